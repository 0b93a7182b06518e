package migrations

import (
	"context"
	"fmt"

	"MediBook/repository"
	"MediBook/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Find the highest tokenNumber already stored
* Raise the bookingToken counter to it so new bookings continue after it
 */
func SeedTokenCounter(ctx context.Context, database *mongo.Database) error {
	bookings := repository.NewBookingRepository(database.Collection(util.BookingCollection))
	counters := repository.NewCounterRepository(database.Collection(util.CounterCollection))

	max, err := bookings.MaxTokenNumber(ctx)
	if err != nil {
		return fmt.Errorf("read max tokenNumber: %w", err)
	}
	if err := counters.SeedAtLeast(ctx, util.BookingTokenSequence, max); err != nil {
		return fmt.Errorf("seed token counter: %w", err)
	}
	log.Info().Int64("maxTokenNumber", max).Msg("Migration applied: token counter seeded")
	return nil
}
