package services

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

// TransactionService owns the persisted transaction history. Records are
// immutable once written and kept most-recent-first.
type TransactionService struct {
	store     store.Store
	cfg       *config.AppConfig
	accounts  *AccountService
	validator *ValidationHelper
}

func NewTransactionService(st store.Store, cfg *config.AppConfig, accounts *AccountService) *TransactionService {
	return &TransactionService{
		store:     st,
		cfg:       cfg,
		accounts:  accounts,
		validator: NewValidationHelper(),
	}
}

// Record prepends tx to the history and applies the balance-adjustment rule
// for completed transactions. The returned value carries the assigned id
// and timestamp.
func (ts *TransactionService) Record(ctx context.Context, tx models.Transaction) models.Transaction {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	if tx.Currency == "" {
		tx.Currency = ts.cfg.Currency
	}

	list := store.Load(ctx, ts.store, store.KeyTransactions, []models.Transaction{})
	list = append([]models.Transaction{tx}, list...)
	if err := store.Save(ctx, ts.store, store.KeyTransactions, list); err != nil {
		log.Printf("[TRANSACTION] persist history failed: %v", err)
	}

	ts.accounts.ApplyTransaction(ctx, tx)
	return tx
}

func (ts *TransactionService) List(ctx context.Context) []models.Transaction {
	return store.Load(ctx, ts.store, store.KeyTransactions, []models.Transaction{})
}

func (ts *TransactionService) Get(ctx context.Context, id string) (models.Transaction, bool) {
	for _, tx := range ts.List(ctx) {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// ListTransactions lists the transaction history, most recent first
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func (ts *TransactionService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	list := ts.List(r.Context())
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit >= 0 && limit < len(list) {
			list = list[:limit]
		}
	}
	SendJSON(w, http.StatusOK, list)
}

// GetTransaction fetches a single transaction by id
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param txId path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{txId} [get]
func (ts *TransactionService) GetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, ok := ts.Get(r.Context(), chi.URLParam(r, "txId"))
	if !ok {
		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}
	SendJSON(w, http.StatusOK, tx)
}

// CreateTransaction records a demo transaction and applies balances
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.Transaction true "Transaction data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Router /transactions [post]
func (ts *TransactionService) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := decodeJSONBody(w, r, &tx); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := ts.validator.ValidateStruct(&tx); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	SendJSON(w, http.StatusCreated, ts.Record(r.Context(), tx))
}
