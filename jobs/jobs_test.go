package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReconciler struct {
	calls int
	err   error
}

func (r *countingReconciler) ReconcileTokenCounter(ctx context.Context) error {
	r.calls++
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return errors.New("missing deadline")
	}
	return r.err
}

func TestRunTokenReconciliation(t *testing.T) {
	r := &countingReconciler{}
	RunTokenReconciliation(r)
	assert.Equal(t, 1, r.calls)

	failing := &countingReconciler{err: errors.New("db down")}
	assert.NotPanics(t, func() { RunTokenReconciliation(failing) })
	assert.Equal(t, 1, failing.calls)
}

func TestStartDailyScheduler(t *testing.T) {
	c, err := StartDailyScheduler(&countingReconciler{})
	require.NoError(t, err)
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Next.IsZero())
}

func TestDailySpecParses(t *testing.T) {
	_, err := cron.ParseStandard(DailySpec)
	assert.NoError(t, err)
}
