package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashbackService_Activate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("seeded offers start inactive", func(t *testing.T) {
		offers := env.cashback.List(ctx)
		require.Len(t, offers, 3)
		for _, o := range offers {
			assert.False(t, o.Active)
		}
	})

	t.Run("activation persists and notifies", func(t *testing.T) {
		offer, err := env.cashback.Activate(ctx, "cb-1")
		require.NoError(t, err)
		assert.True(t, offer.Active)

		offers := env.cashback.List(ctx)
		assert.True(t, offers[0].Active)
		assert.False(t, offers[1].Active)

		notifs := env.notifier.List(ctx)
		require.NotEmpty(t, notifs)
		assert.Equal(t, "Cashback Auchan Dakar activé", notifs[0].Message)
	})

	t.Run("activating twice is a no-op", func(t *testing.T) {
		before := len(env.notifier.List(ctx))
		offer, err := env.cashback.Activate(ctx, "cb-1")
		require.NoError(t, err)
		assert.True(t, offer.Active)
		assert.Len(t, env.notifier.List(ctx), before)
	})

	t.Run("unknown offer", func(t *testing.T) {
		_, err := env.cashback.Activate(ctx, "cb-999")
		assert.ErrorIs(t, err, ErrOfferNotFound)
	})
}
