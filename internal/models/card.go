package models

// Card statuses. Freeze/unfreeze toggles between the two; there is no
// issuer-network effect in this simulated domain.
const (
	CardStatusActive = "active"
	CardStatusFrozen = "frozen"
)

// Card is a payment card attached to the current user. The card balance is
// display data and is not reconciled with any Account balance.
type Card struct {
	ID       string `json:"id"`
	Network  string `json:"network"` // Visa or Mastercard
	Number   string `json:"number"`  // 16 digits, no Luhn validation
	Expiry   string `json:"expiry"`
	Holder   string `json:"holder"`
	Status   string `json:"status"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}
