package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunubank/demobank/internal/models"
)

func declinedTransferTx() models.Transaction {
	return models.Transaction{
		ID:        "tx-export-1",
		Date:      time.Now(),
		Recipient: "Moussa Diop",
		Amount:    50_000,
		Currency:  "XOF",
		Type:      models.TxTypeDebit,
		Category:  "Virement",
		Status:    models.TxStatusFailed,
	}
}

func TestISO20022Service_CreatePacs008(t *testing.T) {
	env := newTestEnv(t)
	tx := declinedTransferTx()

	doc, err := env.iso.CreatePacs008(&tx, "Awa Ndiaye")
	require.NoError(t, err)

	assert.Equal(t, "1", string(doc.GrpHdr.NbOfTxs))
	require.Len(t, doc.CdtTrfTxInf, 1)
	info := doc.CdtTrfTxInf[0]
	assert.Equal(t, float64(50_000), info.IntrBkSttlmAmt.Value)
	assert.Equal(t, "XOF", string(info.IntrBkSttlmAmt.Ccy))
	assert.Equal(t, "tx-export-1", string(info.PmtId.EndToEndId))
	assert.Equal(t, "Awa Ndiaye", string(*info.Dbtr.Nm))
	assert.Equal(t, "Moussa Diop", string(*info.Cdtr.Nm))
}

func TestISO20022Service_CreatePacs002(t *testing.T) {
	env := newTestEnv(t)
	tx := declinedTransferTx()

	doc, err := env.iso.CreatePacs002(&tx, statusCode(tx.Status))
	require.NoError(t, err)

	require.Len(t, doc.TxInfAndSts, 1)
	assert.Equal(t, "RJCT", string(*doc.TxInfAndSts[0].TxSts))
	assert.Equal(t, "tx-export-1", string(*doc.TxInfAndSts[0].OrgnlTxId))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "RJCT", statusCode(models.TxStatusFailed))
	assert.Equal(t, "ACSC", statusCode(models.TxStatusCompleted))
	assert.Equal(t, "ACCP", statusCode(""))
}

func TestISO20022Service_ExportTransaction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.txs.Record(ctx, declinedTransferTx())

	r := chi.NewRouter()
	r.Get("/transactions/{txId}/iso20022", env.iso.ExportTransaction)

	t.Run("declined transfer exports as RJCT", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions/tx-export-1/iso20022", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "pacs.008.001.08", resp["messageType"])
		assert.Contains(t, resp["instruction"], "<?xml")
		assert.Contains(t, resp["instruction"], "Moussa Diop")
		assert.Contains(t, resp["statusReport"], "RJCT")
	})

	t.Run("unknown transaction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions/tx-none/iso20022", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
