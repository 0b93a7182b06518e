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

type PrescriptionRepository struct {
	coll *mongo.Collection
}

func NewPrescriptionRepository(coll *mongo.Collection) *PrescriptionRepository {
	return &PrescriptionRepository{coll: coll}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *models.Prescription) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := db.CreateOne(ctx, r.coll, p)
	return mapError(err)
}

func (r *PrescriptionRepository) Find(ctx context.Context, filter PrescriptionFilter) ([]models.Prescription, error) {
	opts := options.Find()
	if filter.NewestFirst {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	prescriptions, err := db.FindAll[models.Prescription](ctx, r.coll, filter.BSON(), opts)
	return prescriptions, mapError(err)
}

func (r *PrescriptionRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Prescription, error) {
	var p models.Prescription
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := db.FindOneAndUpdate(ctx, r.coll, bson.M{"_id": id}, bson.M{"$set": set}, &p, opts); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
