package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunubank/demobank/internal/models"
)

func TestTransactionService_Record(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("fills id, date and currency", func(t *testing.T) {
		tx := env.txs.Record(ctx, models.Transaction{
			Recipient: "Test",
			Amount:    1_000,
			Type:      models.TxTypeDebit,
			Status:    models.TxStatusFailed,
		})
		assert.NotEmpty(t, tx.ID)
		assert.False(t, tx.Date.IsZero())
		assert.Equal(t, "XOF", tx.Currency)
	})

	t.Run("prepends to the history", func(t *testing.T) {
		env.txs.Record(ctx, models.Transaction{
			ID: "tx-new", Recipient: "Latest", Amount: 2_000,
			Type: models.TxTypeDebit, Status: models.TxStatusFailed,
		})
		list := env.txs.List(ctx)
		assert.Equal(t, "tx-new", list[0].ID)
	})

	t.Run("a completed debit adjusts balances", func(t *testing.T) {
		before, _ := env.accounts.Get(ctx, "acc-1")
		env.txs.Record(ctx, models.Transaction{
			Recipient: "Shop", Amount: 5_000,
			Type: models.TxTypeDebit, Status: models.TxStatusCompleted,
		})
		after, _ := env.accounts.Get(ctx, "acc-1")
		assert.Equal(t, before.Balance-5_000, after.Balance)
	})
}

func TestTransactionService_Get(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, ok := env.txs.Get(ctx, "tx-seed-1")
	require.True(t, ok)
	assert.Equal(t, "Canal+ Afrique", tx.Recipient)

	_, ok = env.txs.Get(ctx, "tx-unknown")
	assert.False(t, ok)
}

func TestTransactionService_Handlers(t *testing.T) {
	env := newTestEnv(t)

	r := chi.NewRouter()
	r.Get("/transactions", env.txs.ListTransactions)
	r.Get("/transactions/{txId}", env.txs.GetTransaction)
	r.Post("/transactions", env.txs.CreateTransaction)

	t.Run("list honors the limit parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions?limit=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var list []models.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 2)
	})

	t.Run("get unknown transaction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions/tx-unknown", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString("invalid"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation rejects a bad type", func(t *testing.T) {
		body, _ := json.Marshal(models.Transaction{
			Recipient: "X", Amount: 100, Currency: "XOF", Type: "refund",
		})
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid transaction is created", func(t *testing.T) {
		body, _ := json.Marshal(models.Transaction{
			Recipient: "Boutique", Amount: 100, Currency: "XOF",
			Type: models.TxTypeDebit, Status: models.TxStatusCompleted,
		})
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created models.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
	})
}
