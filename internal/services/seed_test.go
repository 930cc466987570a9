package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

func TestSeed(t *testing.T) {
	st := store.NewMemory()
	cfg := testConfig()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, st, cfg))

	t.Run("writes the demo dataset", func(t *testing.T) {
		accounts := store.Load(ctx, st, store.KeyAccounts, []models.Account{})
		require.Len(t, accounts, 2)
		assert.Equal(t, int64(195_000_000), accounts[0].Balance)

		cards := store.Load(ctx, st, store.KeyCards, []models.Card{})
		require.Len(t, cards, 2)
		for _, c := range cards {
			assert.Equal(t, models.CardStatusActive, c.Status)
		}

		user := store.Load(ctx, st, store.KeyCurrentUser, models.User{})
		assert.Equal(t, "usr-1", user.ID)

		assert.False(t, store.Load(ctx, st, store.KeyLoggedIn, true))
	})

	t.Run("reseeding never overwrites user data", func(t *testing.T) {
		accounts := store.Load(ctx, st, store.KeyAccounts, []models.Account{})
		accounts[0].Balance = 42
		require.NoError(t, store.Save(ctx, st, store.KeyAccounts, accounts))

		require.NoError(t, Seed(ctx, st, cfg))

		again := store.Load(ctx, st, store.KeyAccounts, []models.Account{})
		assert.Equal(t, int64(42), again[0].Balance)
	})
}
