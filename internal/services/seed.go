package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

// Seed writes the default demo dataset on first run. An existing account
// collection means the store already carries user data and nothing is
// touched.
func Seed(ctx context.Context, st store.Store, cfg *config.AppConfig) error {
	if _, err := st.Get(ctx, store.KeyAccounts); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	log.Println("[SEED] writing demo dataset")

	user := models.User{
		ID:     "usr-1",
		Name:   "Awa Ndiaye",
		Email:  "awa.ndiaye@example.com",
		Avatar: "/static/avatars/default.svg",
	}

	accounts := []models.Account{
		{
			ID:            "acc-1",
			Type:          "Compte Courant",
			Balance:       195_000_000,
			Currency:      cfg.Currency,
			AccountNumber: "SN12 K001 0152 3456 7890 12",
		},
		{
			ID:            "acc-2",
			Type:          "Compte Épargne",
			Balance:       2_500_000,
			Currency:      cfg.Currency,
			AccountNumber: "SN12 K001 0152 3456 7890 34",
		},
	}

	cards := []models.Card{
		{
			ID:       "card-1",
			Network:  "Visa",
			Number:   "4539148803436467",
			Expiry:   "09/27",
			Holder:   "AWA NDIAYE",
			Status:   models.CardStatusActive,
			Balance:  195_000_000,
			Currency: cfg.Currency,
		},
		{
			ID:       "card-2",
			Network:  "Mastercard",
			Number:   "5425233430109903",
			Expiry:   "01/28",
			Holder:   "AWA NDIAYE",
			Status:   models.CardStatusActive,
			Balance:  2_500_000,
			Currency: cfg.Currency,
		},
	}

	now := time.Now()
	transactions := []models.Transaction{
		{
			ID:        "tx-seed-1",
			Date:      now.AddDate(0, 0, -3),
			Recipient: "Canal+ Afrique",
			Amount:    15_000,
			Currency:  cfg.Currency,
			Type:      models.TxTypeDebit,
			Category:  "Abonnement",
			Status:    models.TxStatusCompleted,
		},
		{
			ID:        "tx-seed-2",
			Date:      now.AddDate(0, 0, -10),
			Recipient: "Sonatel",
			Amount:    25_000,
			Currency:  cfg.Currency,
			Type:      models.TxTypeDebit,
			Category:  "Factures",
			Status:    models.TxStatusCompleted,
		},
		{
			ID:        "tx-seed-3",
			Date:      now.AddDate(0, -1, 0),
			Recipient: "Virement reçu",
			Amount:    195_000_000,
			Currency:  cfg.Currency,
			Type:      models.TxTypeCredit,
			Category:  "Dépôt",
			Status:    models.TxStatusCompleted,
		},
	}

	offers := []models.CashbackOffer{
		{ID: "cb-1", Name: "Auchan Dakar", Rate: 5, Category: "Courses", Logo: "/static/logos/auchan.svg"},
		{ID: "cb-2", Name: "Total Energies", Rate: 3, Category: "Carburant", Logo: "/static/logos/total.svg"},
		{ID: "cb-3", Name: "Jumia", Rate: 8, Category: "Shopping", Logo: "/static/logos/jumia.svg"},
	}

	if err := store.Save(ctx, st, store.KeyCurrentUser, user); err != nil {
		return err
	}
	if err := store.Save(ctx, st, store.KeyAccounts, accounts); err != nil {
		return err
	}
	if err := store.Save(ctx, st, store.KeyCards, cards); err != nil {
		return err
	}
	if err := store.Save(ctx, st, store.KeyTransactions, transactions); err != nil {
		return err
	}
	if err := store.Save(ctx, st, store.KeyCashback, offers); err != nil {
		return err
	}
	if err := store.Save(ctx, st, store.KeyLoggedIn, false); err != nil {
		return err
	}
	return nil
}
