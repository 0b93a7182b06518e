package repository

import (
	"context"

	"MediBook/config/db"
	"MediBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(coll *mongo.Collection) *BookingRepository {
	return &BookingRepository{coll: coll}
}

// Create inserts the booking as given, tokenNumber included. A clash on the
// tokenNumber unique index surfaces as ErrDuplicate.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := db.CreateOne(ctx, r.coll, booking)
	return mapError(err)
}

func (r *BookingRepository) Find(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	bookings, err := db.FindAll[models.Booking](ctx, r.coll, filter.BSON())
	return bookings, mapError(err)
}

func (r *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	if err := db.FindOne(ctx, r.coll, bson.M{"_id": id}, &booking); err != nil {
		return nil, mapError(err)
	}
	return &booking, nil
}

func (r *BookingRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error) {
	var booking models.Booking
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := db.FindOneAndUpdate(ctx, r.coll, bson.M{"_id": id}, bson.M{"$set": set}, &booking, opts); err != nil {
		return nil, mapError(err)
	}
	return &booking, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MaxTokenNumber returns the highest stored tokenNumber, or 0 when there are
// no bookings.
func (r *BookingRepository) MaxTokenNumber(ctx context.Context) (int64, error) {
	var last models.Booking
	opts := options.FindOne().
		SetSort(bson.D{{Key: "tokenNumber", Value: -1}}).
		SetProjection(bson.M{"tokenNumber": 1})
	err := db.FindOne(ctx, r.coll, bson.M{}, &last, opts)
	if db.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.TokenNumber, nil
}
