package migrations

import (
	"context"
	"fmt"

	"MediBook/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type uniqueIndex struct {
	collection string
	field      string
}

var uniqueIndexes = []uniqueIndex{
	{util.RegisterCollection, "email"},
	{util.DoctorCollection, "doctorId"},
	{util.BookingCollection, "tokenNumber"},
}

// CreateUniqueIndexes is safe to run repeatedly; Mongo treats an identical
// existing index as success.
func CreateUniqueIndexes(ctx context.Context, database *mongo.Database) error {
	for _, idx := range uniqueIndexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(idx.field + "_unique"),
		}
		if _, err := database.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create unique index %s.%s: %w", idx.collection, idx.field, err)
		}
	}
	log.Info().Int("indexes", len(uniqueIndexes)).Msg("Migration applied: unique indexes ensured")
	return nil
}
