package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/store"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Currency:             "XOF",
		BankBrand:            "sunubank",
		FlatTransferFee:      500,
		DailyTransferCeiling: 2_000_000,
		ToastTTL:             25 * time.Millisecond,
		MaxNotifications:     100,
		DefaultLanguage:      "FR",
		LoginLatency:         time.Millisecond,
		DemoPIN:              "123456",
	}
}

type testEnv struct {
	st        store.Store
	cfg       *config.AppConfig
	settings  *SettingsService
	notifier  *NotificationService
	accounts  *AccountService
	txs       *TransactionService
	session   *SessionService
	cards     *CardService
	goals     *GoalService
	cashback  *CashbackService
	stats     *StatsService
	transfers *TransferService
	iso       *ISO20022Service
}

// newTestEnv wires the full service graph over an in-memory store seeded
// with the demo dataset.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemory()
	cfg := testConfig()
	require.NoError(t, Seed(context.Background(), st, cfg))

	settings := NewSettingsService(st, cfg)
	notifier := NewNotificationService(st, cfg)
	accounts := NewAccountService(st, cfg)
	txs := NewTransactionService(st, cfg, accounts)
	session := NewSessionService(st, cfg, notifier, settings)
	cards := NewCardService(st, notifier, settings)
	goals := NewGoalService(st, cfg, notifier, settings)
	cashback := NewCashbackService(st, notifier, settings)
	stats := NewStatsService(txs, settings)
	transfers := NewTransferService(cfg, accounts, txs, notifier, settings, AlwaysDeclinePolicy{})
	iso := NewISO20022Service(txs, session)

	return &testEnv{
		st:        st,
		cfg:       cfg,
		settings:  settings,
		notifier:  notifier,
		accounts:  accounts,
		txs:       txs,
		session:   session,
		cards:     cards,
		goals:     goals,
		cashback:  cashback,
		stats:     stats,
		transfers: transfers,
		iso:       iso,
	}
}
