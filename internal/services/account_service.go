package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

// AccountService owns the seeded account list and the balance-adjustment
// rule applied when a completed transaction is recorded.
type AccountService struct {
	store store.Store
	cfg   *config.AppConfig
}

func NewAccountService(st store.Store, cfg *config.AppConfig) *AccountService {
	return &AccountService{store: st, cfg: cfg}
}

func (as *AccountService) List(ctx context.Context) []models.Account {
	return store.Load(ctx, as.store, store.KeyAccounts, []models.Account{})
}

func (as *AccountService) Get(ctx context.Context, id string) (models.Account, bool) {
	for _, acc := range as.List(ctx) {
		if acc.ID == id {
			return acc, true
		}
	}
	return models.Account{}, false
}

// ApplyTransaction adjusts balances for a completed transaction: a debit
// decreases every account by the amount, a credit increases every account.
// The adjustment deliberately spans all accounts because the stored record
// does not retain which account it belongs to. Failed transactions never
// touch balances.
func (as *AccountService) ApplyTransaction(ctx context.Context, tx models.Transaction) {
	if tx.Status != models.TxStatusCompleted {
		return
	}

	accounts := as.List(ctx)
	for i := range accounts {
		switch tx.Type {
		case models.TxTypeDebit:
			accounts[i].Balance -= tx.Amount
		case models.TxTypeCredit:
			accounts[i].Balance += tx.Amount
		}
	}
	if err := store.Save(ctx, as.store, store.KeyAccounts, accounts); err != nil {
		log.Printf("[ACCOUNTS] persist balances failed: %v", err)
	}
}

func (as *AccountService) TotalBalance(ctx context.Context) int64 {
	var total int64
	for _, acc := range as.List(ctx) {
		total += acc.Balance
	}
	return total
}

// MonthlySpent sums the completed debits dated in the current month, for
// the spending-limit gauge.
func (as *AccountService) MonthlySpent(ctx context.Context) int64 {
	now := time.Now()
	var spent int64
	txs := store.Load(ctx, as.store, store.KeyTransactions, []models.Transaction{})
	for _, tx := range txs {
		if tx.Status != models.TxStatusCompleted || tx.Type != models.TxTypeDebit {
			continue
		}
		if tx.Date.Year() == now.Year() && tx.Date.Month() == now.Month() {
			spent += tx.Amount
		}
	}
	return spent
}

// ListAccounts lists the current user's accounts
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} models.Account
// @Router /accounts [get]
func (as *AccountService) ListAccounts(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, as.List(r.Context()))
}

// WalletSummary reports total assets and monthly spending against the limit
// @Summary Wallet summary
// @Tags accounts
// @Produce json
// @Success 200 {object} object{totalBalance=int64,monthlySpent=int64,spendingLimit=int64,currency=string}
// @Router /wallet/summary [get]
func (as *AccountService) WalletSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	SendJSON(w, http.StatusOK, map[string]any{
		"totalBalance":  as.TotalBalance(ctx),
		"monthlySpent":  as.MonthlySpent(ctx),
		"spendingLimit": as.cfg.DailyTransferCeiling,
		"currency":      as.cfg.Currency,
	})
}
