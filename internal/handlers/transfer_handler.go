package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sunubank/demobank/internal/middleware"
	"github.com/sunubank/demobank/internal/services"
)

// TransferHandler adapts the transfer wizard to HTTP. The wizard is keyed
// by the authenticated session, so each user drives their own flow.
type TransferHandler struct {
	transfers *services.TransferService
}

func NewTransferHandler(transfers *services.TransferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

func (h *TransferHandler) session(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// GetWizard returns the wizard's current step, draft and result
// @Summary Current transfer wizard state
// @Tags transfers
// @Produce json
// @Success 200 {object} services.Wizard
// @Router /transfers/wizard [get]
func (h *TransferHandler) GetWizard(w http.ResponseWriter, r *http.Request) {
	services.SendJSON(w, http.StatusOK, h.transfers.Wizard(r.Context(), h.session(r)))
}

// SelectAccount picks the source account (step 1)
// @Summary Select source account
// @Tags transfers
// @Accept json
// @Produce json
// @Param account body object{accountId=string} true "Source account"
// @Success 200 {object} services.Wizard
// @Failure 400 {object} services.ErrorResponse
// @Router /transfers/wizard/account [post]
func (h *TransferHandler) SelectAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID string `json:"accountId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := h.transfers.SelectAccount(r.Context(), h.session(r), req.AccountID); err != nil {
		h.guardError(w, err)
		return
	}
	services.SendJSON(w, http.StatusOK, h.transfers.Wizard(r.Context(), h.session(r)))
}

// SetBeneficiary fills the beneficiary fields (step 2)
// @Summary Set beneficiary details
// @Tags transfers
// @Accept json
// @Produce json
// @Param beneficiary body object{lastName=string,firstName=string,iban=string,bankName=string} true "Beneficiary"
// @Success 200 {object} services.Wizard
// @Failure 400 {object} services.ErrorResponse
// @Router /transfers/wizard/beneficiary [post]
func (h *TransferHandler) SetBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LastName  string `json:"lastName"`
		FirstName string `json:"firstName"`
		IBAN      string `json:"iban"`
		BankName  string `json:"bankName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := h.transfers.SetBeneficiary(r.Context(), h.session(r), req.LastName, req.FirstName, req.IBAN, req.BankName); err != nil {
		h.guardError(w, err)
		return
	}
	services.SendJSON(w, http.StatusOK, h.transfers.Wizard(r.Context(), h.session(r)))
}

// SetAmount fills the amount and reason (step 3)
// @Summary Set amount and reason
// @Tags transfers
// @Accept json
// @Produce json
// @Param amount body object{amount=string,reason=string} true "Amount and reason"
// @Success 200 {object} services.Wizard
// @Failure 400 {object} services.ErrorResponse
// @Router /transfers/wizard/amount [post]
func (h *TransferHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount string `json:"amount"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := h.transfers.SetAmount(r.Context(), h.session(r), req.Amount, req.Reason); err != nil {
		h.guardError(w, err)
		return
	}
	services.SendJSON(w, http.StatusOK, h.transfers.Wizard(r.Context(), h.session(r)))
}

// Next advances the wizard one step
// @Summary Advance wizard
// @Tags transfers
// @Produce json
// @Success 200 {object} services.Wizard
// @Failure 400 {object} services.ErrorResponse
// @Router /transfers/wizard/next [post]
func (h *TransferHandler) Next(w http.ResponseWriter, r *http.Request) {
	if err := h.transfers.Next(r.Context(), h.session(r)); err != nil {
		h.guardError(w, err)
		return
	}
	services.SendJSON(w, http.StatusOK, h.transfers.Wizard(r.Context(), h.session(r)))
}

// Back steps the wizard backwards, keeping entered fields
// @Summary Step wizard back
// @Tags transfers
// @Produce json
// @Success 200 {object} services.Wizard
// @Failure 400 {object} services.ErrorResponse
// @Router /transfers/wizard/back [post]
func (h *TransferHandler) Back(w http.ResponseWriter, r *http.Request) {
	if err := h.transfers.Back(r.Context(), h.session(r)); err != nil {
		h.guardError(w, err)
		return
	}
	services.SendJSON(w, http.StatusOK, h.transfers.Wizard(r.Context(), h.session(r)))
}

// Submit finalizes the transfer through the outcome policy
// @Summary Submit transfer
// @Tags transfers
// @Produce json
// @Success 200 {object} services.TransferResult
// @Failure 400 {object} services.ErrorResponse
// @Router /transfers/submit [post]
func (h *TransferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.transfers.Submit(r.Context(), h.session(r))
	if err != nil {
		h.guardError(w, err)
		return
	}
	services.SendJSON(w, http.StatusOK, result)
}

// Reset clears the wizard back to step 1
// @Summary Reset wizard
// @Tags transfers
// @Produce json
// @Success 200 {object} services.Wizard
// @Router /transfers/reset [post]
func (h *TransferHandler) Reset(w http.ResponseWriter, r *http.Request) {
	services.SendJSON(w, http.StatusOK, h.transfers.Reset(r.Context(), h.session(r)))
}

// guardError maps the wizard guard errors to an inline 400; nothing was
// persisted when one of these fires.
func (h *TransferHandler) guardError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, services.ErrUnknownAccount) {
		status = http.StatusNotFound
	}
	services.SendErrorResponse(w, err.Error(), status, nil)
}
