package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/models"
)

// Wizard steps. Transitions are strictly linear; submit is only legal from
// StepAmount and lands on StepResult.
type Step int

const (
	StepSelectAccount Step = iota + 1
	StepBeneficiary
	StepAmount
	StepResult
)

// Guard errors. None of them mutate any persisted state; the wizard simply
// refuses to advance.
var (
	ErrNoAccountSelected     = errors.New("no source account selected")
	ErrUnknownAccount        = errors.New("unknown source account")
	ErrBeneficiaryIncomplete = errors.New("beneficiary details incomplete")
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrEmptyReason           = errors.New("transfer reason is required")
	ErrCeilingExceeded       = errors.New("amount exceeds the daily transfer ceiling")
	ErrInsufficientBalance   = errors.New("amount plus fee exceeds the account balance")
	ErrWrongStep             = errors.New("operation not allowed at this step")
)

// TransferDraft holds the raw wizard inputs. Amount stays a string until
// submit, mirroring the form field it comes from.
type TransferDraft struct {
	AccountID string `json:"accountId"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	IBAN      string `json:"iban"`
	BankName  string `json:"bankName"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason"`
}

// TransferResult is the terminal view of a submitted transfer: the recorded
// transaction plus the figures the failure screen displays.
type TransferResult struct {
	Transaction models.Transaction `json:"transaction"`
	Recipient   string             `json:"recipient"`
	Amount      int64              `json:"amount"`
	Fee         int64              `json:"fee"`
	Message     string             `json:"message"`
}

// Wizard is one user's three-step transfer flow.
type Wizard struct {
	Step   Step            `json:"step"`
	Data   TransferDraft   `json:"data"`
	Result *TransferResult `json:"result,omitempty"`
}

// TransferService drives the transfer wizard: guards, fee computation and
// the pluggable outcome policy. One wizard per session, kept in memory —
// drafts are never persisted, only the submitted transaction is.
type TransferService struct {
	cfg          *config.AppConfig
	accounts     *AccountService
	transactions *TransactionService
	notifier     *NotificationService
	settings     *SettingsService
	policy       OutcomePolicy

	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewTransferService(
	cfg *config.AppConfig,
	accounts *AccountService,
	transactions *TransactionService,
	notifier *NotificationService,
	settings *SettingsService,
	policy OutcomePolicy,
) *TransferService {
	return &TransferService{
		cfg:          cfg,
		accounts:     accounts,
		transactions: transactions,
		notifier:     notifier,
		settings:     settings,
		policy:       policy,
		wizards:      make(map[string]*Wizard),
	}
}

// Wizard returns the session's wizard, creating a fresh one with the first
// account preselected on first use.
func (ts *TransferService) Wizard(ctx context.Context, session string) *Wizard {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.wizardLocked(ctx, session)
}

func (ts *TransferService) wizardLocked(ctx context.Context, session string) *Wizard {
	if w, ok := ts.wizards[session]; ok {
		return w
	}
	w := &Wizard{Step: StepSelectAccount, Data: TransferDraft{}}
	if accounts := ts.accounts.List(ctx); len(accounts) > 0 {
		w.Data.AccountID = accounts[0].ID
	}
	ts.wizards[session] = w
	return w
}

// SelectAccount picks the source account at step 1.
func (ts *TransferService) SelectAccount(ctx context.Context, session, accountID string) error {
	if _, ok := ts.accounts.Get(ctx, accountID); !ok {
		return ErrUnknownAccount
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	w := ts.wizardLocked(ctx, session)
	if w.Step != StepSelectAccount {
		return ErrWrongStep
	}
	w.Data.AccountID = accountID
	return nil
}

// SetBeneficiary fills the step 2 fields.
func (ts *TransferService) SetBeneficiary(ctx context.Context, session, lastName, firstName, iban, bankName string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	w := ts.wizardLocked(ctx, session)
	if w.Step != StepBeneficiary {
		return ErrWrongStep
	}
	w.Data.LastName = strings.TrimSpace(lastName)
	w.Data.FirstName = strings.TrimSpace(firstName)
	w.Data.IBAN = strings.TrimSpace(iban)
	w.Data.BankName = strings.TrimSpace(bankName)
	return nil
}

// SetAmount fills the step 3 fields.
func (ts *TransferService) SetAmount(ctx context.Context, session, amount, reason string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	w := ts.wizardLocked(ctx, session)
	if w.Step != StepAmount {
		return ErrWrongStep
	}
	w.Data.Amount = strings.TrimSpace(amount)
	w.Data.Reason = strings.TrimSpace(reason)
	return nil
}

// Next advances one step when the current step's guard holds.
func (ts *TransferService) Next(ctx context.Context, session string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	w := ts.wizardLocked(ctx, session)

	switch w.Step {
	case StepSelectAccount:
		if w.Data.AccountID == "" {
			return ErrNoAccountSelected
		}
		if _, ok := ts.accounts.Get(ctx, w.Data.AccountID); !ok {
			return ErrUnknownAccount
		}
		w.Step = StepBeneficiary
	case StepBeneficiary:
		if w.Data.LastName == "" || w.Data.FirstName == "" || w.Data.IBAN == "" || w.Data.BankName == "" {
			return ErrBeneficiaryIncomplete
		}
		w.Step = StepAmount
	default:
		return ErrWrongStep
	}
	return nil
}

// Back steps backwards, keeping all entered fields.
func (ts *TransferService) Back(ctx context.Context, session string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	w := ts.wizardLocked(ctx, session)
	if w.Step <= StepSelectAccount || w.Step >= StepResult {
		return ErrWrongStep
	}
	w.Step--
	return nil
}

// Fee is 0 for an on-us transfer (destination bank name contains the
// issuer brand, case-insensitive) and the flat fee otherwise. String match,
// not an account-graph lookup.
func (ts *TransferService) Fee(bankName string) int64 {
	if strings.Contains(strings.ToLower(bankName), strings.ToLower(ts.cfg.BankBrand)) {
		return 0
	}
	return ts.cfg.FlatTransferFee
}

// Submit runs the step 3 guards and, when they hold, hands the request to
// the outcome policy, records the resulting transaction, emits the outcome
// notification and parks the wizard on the result view. A guard failure
// persists nothing.
func (ts *TransferService) Submit(ctx context.Context, session string) (*TransferResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	w := ts.wizardLocked(ctx, session)
	if w.Step != StepAmount {
		return nil, ErrWrongStep
	}

	amountF, err := strconv.ParseFloat(w.Data.Amount, 64)
	if err != nil || math.IsNaN(amountF) || math.IsInf(amountF, 0) || amountF <= 0 {
		return nil, ErrInvalidAmount
	}
	// Range-check on the float: converting an out-of-range float64 to
	// int64 is implementation-defined.
	if amountF > float64(ts.cfg.DailyTransferCeiling) {
		return nil, ErrCeilingExceeded
	}
	amount := int64(amountF)
	if amount < 1 {
		return nil, ErrInvalidAmount
	}
	if w.Data.Reason == "" {
		return nil, ErrEmptyReason
	}

	account, ok := ts.accounts.Get(ctx, w.Data.AccountID)
	if !ok {
		return nil, ErrUnknownAccount
	}
	fee := ts.Fee(w.Data.BankName)
	if amount+fee > account.Balance {
		return nil, ErrInsufficientBalance
	}

	outcome := ts.policy.Evaluate(TransferRequest{
		AccountID: w.Data.AccountID,
		FirstName: w.Data.FirstName,
		LastName:  w.Data.LastName,
		IBAN:      w.Data.IBAN,
		BankName:  w.Data.BankName,
		Reason:    w.Data.Reason,
		Amount:    amount,
		Fee:       fee,
	})

	lang := ts.settings.Language(ctx)
	recipient := strings.TrimSpace(w.Data.FirstName + " " + w.Data.LastName)

	tx := ts.transactions.Record(ctx, models.Transaction{
		Recipient: recipient,
		Amount:    amount,
		Currency:  ts.cfg.Currency,
		Type:      models.TxTypeDebit,
		Category:  i18n.T(lang, "transferCategory"),
		Status:    outcome.Status,
	})

	message := i18n.T(lang, outcome.MessageKey)
	ts.notifier.Notify(ctx, message)

	w.Result = &TransferResult{
		Transaction: tx,
		Recipient:   recipient,
		Amount:      amount,
		Fee:         fee,
		Message:     message,
	}
	w.Step = StepResult
	return w.Result, nil
}

// Reset clears every entered field and returns the wizard to step 1.
func (ts *TransferService) Reset(ctx context.Context, session string) *Wizard {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	delete(ts.wizards, session)
	return ts.wizardLocked(ctx, session)
}
