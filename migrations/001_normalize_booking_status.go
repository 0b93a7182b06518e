package migrations

import (
	"context"
	"fmt"

	"MediBook/models"
	"MediBook/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NormalizeBookingStatus rewrites the lowercase "pending" status older
// bookings were stored with.
func NormalizeBookingStatus(ctx context.Context, database *mongo.Database) (int64, error) {
	result, err := database.Collection(util.BookingCollection).UpdateMany(
		ctx,
		bson.M{"status": "pending"},
		bson.M{"$set": bson.M{"status": models.StatusPending}},
	)
	if err != nil {
		return 0, fmt.Errorf("normalize booking status: %w", err)
	}
	log.Info().Int64("modified", result.ModifiedCount).Msg("Migration applied: booking status normalized")
	return result.ModifiedCount, nil
}
