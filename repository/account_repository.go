package repository

import (
	"context"

	"MediBook/config/db"
	"MediBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(coll *mongo.Collection) *AccountRepository {
	return &AccountRepository{coll: coll}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Register, error) {
	var account models.Register
	if err := db.FindOne(ctx, r.coll, bson.M{"email": email}, &account); err != nil {
		return nil, mapError(err)
	}
	return &account, nil
}

// Create relies on the unique email index for the final say on duplicates.
func (r *AccountRepository) Create(ctx context.Context, account *models.Register) error {
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	_, err := db.CreateOne(ctx, r.coll, account)
	return mapError(err)
}
