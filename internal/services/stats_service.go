package services

import (
	"context"
	"net/http"
	"time"

	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/models"
)

// MonthPoint is one pre-aggregated entry of the chart series: localized
// month label plus completed debit and credit sums.
type MonthPoint struct {
	Month  string `json:"month"`
	Debit  int64  `json:"debit"`
	Credit int64  `json:"credit"`
}

// StatsService reduces the transaction history into the numeric series the
// chart collaborator consumes. Only completed transactions count.
type StatsService struct {
	transactions *TransactionService
	settings     *SettingsService
}

func NewStatsService(transactions *TransactionService, settings *SettingsService) *StatsService {
	return &StatsService{transactions: transactions, settings: settings}
}

// MonthlySeries returns the last monthsBack months (oldest first) with the
// sums of completed debits and credits dated in each month.
func (st *StatsService) MonthlySeries(ctx context.Context, monthsBack int) []MonthPoint {
	lang := st.settings.Language(ctx)
	now := time.Now()
	// anchor on the first of the month so stepping back never skips or
	// repeats a month
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	series := make([]MonthPoint, 0, monthsBack)

	for i := monthsBack - 1; i >= 0; i-- {
		ref := anchor.AddDate(0, -i, 0)
		point := MonthPoint{Month: i18n.MonthLabel(ref.Month(), lang)}
		for _, tx := range st.transactions.List(ctx) {
			if tx.Status != models.TxStatusCompleted {
				continue
			}
			if tx.Date.Year() != ref.Year() || tx.Date.Month() != ref.Month() {
				continue
			}
			switch tx.Type {
			case models.TxTypeDebit:
				point.Debit += tx.Amount
			case models.TxTypeCredit:
				point.Credit += tx.Amount
			}
		}
		series = append(series, point)
	}
	return series
}

// MonthlyStats returns the chart series for the statistics screen
// @Summary Monthly debit/credit series
// @Tags statistics
// @Produce json
// @Success 200 {array} MonthPoint
// @Router /statistics/monthly [get]
func (st *StatsService) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, st.MonthlySeries(r.Context(), 6))
}
