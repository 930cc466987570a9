package services

import "github.com/sunubank/demobank/internal/models"

// TransferRequest is the fully validated input handed to the outcome
// policy on submit.
type TransferRequest struct {
	AccountID string
	FirstName string
	LastName  string
	IBAN      string
	BankName  string
	Reason    string
	Amount    int64
	Fee       int64
}

// TransferOutcome is what the simulated backend decided: the status the
// recorded transaction carries and the translation key of the user-facing
// message.
type TransferOutcome struct {
	Status     string
	MessageKey string
}

// OutcomePolicy decides the fate of a submitted transfer. The state
// machine itself never hardcodes an outcome; swapping the policy is how a
// real backend would be attached later.
type OutcomePolicy interface {
	Evaluate(req TransferRequest) TransferOutcome
}

// AlwaysDeclinePolicy models a bank that declines every transfer. Each
// submission is recorded as a failed debit and surfaces the fixed failure
// message. This is the shipped behavior, not a placeholder.
type AlwaysDeclinePolicy struct{}

func (AlwaysDeclinePolicy) Evaluate(TransferRequest) TransferOutcome {
	return TransferOutcome{
		Status:     models.TxStatusFailed,
		MessageKey: "transferFailed",
	}
}
