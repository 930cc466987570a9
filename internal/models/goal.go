package models

// Goal is a savings goal. CurrentAmount never auto-increments in this
// version; it only moves through future manual top-ups.
type Goal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  int64  `json:"targetAmount"`
	CurrentAmount int64  `json:"currentAmount"`
	Currency      string `json:"currency"`
	Icon          string `json:"icon"`
}
