// Package migrations brings an existing database up to the shape the
// service expects. Every step is idempotent and they run in file order.
package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

func Run(ctx context.Context, database *mongo.Database) error {
	if _, err := NormalizeBookingStatus(ctx, database); err != nil {
		return err
	}
	if err := SeedTokenCounter(ctx, database); err != nil {
		return err
	}
	if _, err := ResolveDuplicateTokenNumbers(ctx, database); err != nil {
		return err
	}
	return CreateUniqueIndexes(ctx, database)
}
