package migrations

import (
	"context"
	"fmt"

	"MediBook/repository"
	"MediBook/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type tokenGroup struct {
	TokenNumber int64                `bson:"_id"`
	IDs         []primitive.ObjectID `bson:"ids"`
}

/*
* Group bookings by tokenNumber, oldest first inside each group
* The oldest booking keeps its number, the others get fresh ones from the counter
* Must run after SeedTokenCounter and before the unique index is built
 */
func ResolveDuplicateTokenNumbers(ctx context.Context, database *mongo.Database) (int, error) {
	coll := database.Collection(util.BookingCollection)
	counters := repository.NewCounterRepository(database.Collection(util.CounterCollection))

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tokenNumber"},
			{Key: "ids", Value: bson.D{{Key: "$push", Value: "$_id"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("find duplicate tokens: %w", err)
	}
	var groups []tokenGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return 0, fmt.Errorf("decode duplicate tokens: %w", err)
	}

	reassigned := 0
	for _, group := range groups {
		for _, id := range group.IDs[1:] {
			next, err := counters.Next(ctx, util.BookingTokenSequence)
			if err != nil {
				return reassigned, fmt.Errorf("draw token for %s: %w", id.Hex(), err)
			}
			if _, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"tokenNumber": next}}); err != nil {
				return reassigned, fmt.Errorf("reassign token for %s: %w", id.Hex(), err)
			}
			log.Warn().Str("booking", id.Hex()).Int64("from", group.TokenNumber).Int64("to", next).Msg("duplicate token number reassigned")
			reassigned++
		}
	}
	log.Info().Int("reassigned", reassigned).Msg("Migration applied: duplicate token numbers resolved")
	return reassigned, nil
}
