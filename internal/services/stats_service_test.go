package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

func TestStatsService_MonthlySeries(t *testing.T) {
	st := store.NewMemory()
	cfg := testConfig()
	accounts := NewAccountService(st, cfg)
	txs := NewTransactionService(st, cfg, accounts)
	settings := NewSettingsService(st, cfg)
	stats := NewStatsService(txs, settings)
	ctx := context.Background()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location())
	history := []models.Transaction{
		{ID: "t1", Date: now, Type: models.TxTypeDebit, Status: models.TxStatusCompleted, Amount: 12_000},
		{ID: "t2", Date: now, Type: models.TxTypeCredit, Status: models.TxStatusCompleted, Amount: 80_000},
		{ID: "t3", Date: now, Type: models.TxTypeDebit, Status: models.TxStatusFailed, Amount: 99_000},
		{ID: "t4", Date: monthStart.AddDate(0, -1, 0), Type: models.TxTypeDebit, Status: models.TxStatusCompleted, Amount: 5_000},
	}
	require.NoError(t, store.Save(ctx, st, store.KeyTransactions, history))

	series := stats.MonthlySeries(ctx, 3)
	require.Len(t, series, 3)

	t.Run("oldest month first", func(t *testing.T) {
		assert.Equal(t, int64(0), series[0].Debit)
		assert.Equal(t, int64(5_000), series[1].Debit)
		assert.Equal(t, int64(12_000), series[2].Debit)
		assert.Equal(t, int64(80_000), series[2].Credit)
	})

	t.Run("failed transactions are excluded", func(t *testing.T) {
		for _, p := range series {
			assert.NotEqual(t, int64(99_000), p.Debit)
		}
	})

	t.Run("labels follow the display language", func(t *testing.T) {
		require.NoError(t, settings.SetLanguage(ctx, "EN"))
		en := stats.MonthlySeries(ctx, 1)
		require.Len(t, en, 1)
		assert.NotEmpty(t, en[0].Month)
	})
}
