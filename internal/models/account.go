package models

// Account is a bank account owned by the current user. Balances are whole
// XOF units (the currency carries no minor unit), so int64 everywhere.
type Account struct {
	ID            string `json:"id"`
	Type          string `json:"type"` // display label, e.g. "Compte Courant"
	Balance       int64  `json:"balance"`
	Currency      string `json:"currency"`
	AccountNumber string `json:"accountNumber"`
}
