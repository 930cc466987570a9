package models

import "time"

const (
	TxTypeDebit  = "debit"
	TxTypeCredit = "credit"
)

const (
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Transaction is an immutable history entry, most-recent-first in the
// persisted list. Transfers record the source account only transiently; the
// stored record does not retain it.
type Transaction struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Recipient string    `json:"recipient"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	Currency  string    `json:"currency" validate:"required,len=3"`
	Type      string    `json:"type" validate:"required,oneof=credit debit"`
	Category  string    `json:"category"`
	Logo      string    `json:"logo,omitempty"`
	Status    string    `json:"status,omitempty" validate:"omitempty,oneof=completed failed"`
}
