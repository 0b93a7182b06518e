package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsEmpty(t *testing.T) {
	ctx := context.Background()
	for name, cache := range map[string]*Cache{
		"nil cache": nil,
		"no client": NewCache(nil, 0),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, cache.SetCache(ctx, "DOCTOR:1", map[string]string{"doctorName": "Ravi"}))

			var out map[string]string
			found, err := cache.GetCache(ctx, "DOCTOR:1", &out)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, out)

			assert.NoError(t, cache.DeleteCache(ctx, "DOCTOR:1"))
			assert.NoError(t, cache.Close())
		})
	}
}
