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

type DoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(coll *mongo.Collection) *DoctorRepository {
	return &DoctorRepository{coll: coll}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	_, err := db.CreateOne(ctx, r.coll, doctor)
	return mapError(err)
}

func (r *DoctorRepository) Find(ctx context.Context, filter DoctorFilter) ([]models.Doctor, error) {
	doctors, err := db.FindAll[models.Doctor](ctx, r.coll, filter.BSON())
	return doctors, mapError(err)
}

func (r *DoctorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := db.FindOne(ctx, r.coll, bson.M{"_id": id}, &doctor); err != nil {
		return nil, mapError(err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Doctor, error) {
	var doctor models.Doctor
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := db.FindOneAndUpdate(ctx, r.coll, bson.M{"_id": id}, bson.M{"$set": set}, &doctor, opts); err != nil {
		return nil, mapError(err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
