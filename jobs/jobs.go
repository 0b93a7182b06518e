package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DailySpec runs the nightly jobs at 00:05.
const DailySpec = "5 0 * * *"

// TokenReconciler raises the booking token counter to the highest stored
// tokenNumber.
type TokenReconciler interface {
	ReconcileTokenCounter(ctx context.Context) error
}

/*
* Register the nightly token counter reconciliation
* Start the scheduler and hand it back so the caller can stop it
 */
func StartDailyScheduler(reconciler TokenReconciler) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(DailySpec, func() {
		log.Info().Msg("Running daily token counter reconciliation...")
		RunTokenReconciliation(reconciler)
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func RunTokenReconciliation(reconciler TokenReconciler) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := reconciler.ReconcileTokenCounter(ctx); err != nil {
		log.Error().Err(err).Msg("token counter reconciliation failed")
	}
}
