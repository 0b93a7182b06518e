package services

import (
	"context"

	"MediBook/models"
	"MediBook/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The stores below are satisfied by both the Mongo repositories and the
// in-memory ones in repository/memory.

type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Register, error)
	Create(ctx context.Context, account *models.Register) error
}

type DoctorStore interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	Find(ctx context.Context, filter repository.DoctorFilter) ([]models.Doctor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	Find(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	MaxTokenNumber(ctx context.Context) (int64, error)
}

type PrescriptionStore interface {
	Create(ctx context.Context, p *models.Prescription) error
	Find(ctx context.Context, filter repository.PrescriptionFilter) ([]models.Prescription, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Prescription, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Sequencer hands out strictly increasing numbers per name. Next must be
// atomic across concurrent callers.
type Sequencer interface {
	Next(ctx context.Context, name string) (int64, error)
	SeedAtLeast(ctx context.Context, name string, value int64) error
}
