package models

// CashbackOffer is a merchant cashback deal the user can activate.
type CashbackOffer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"` // percentage
	Logo     string  `json:"logo"`
	Category string  `json:"category"`
	Active   bool    `json:"active"`
}
