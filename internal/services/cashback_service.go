package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

var ErrOfferNotFound = errors.New("cashback offer not found")

// CashbackService exposes the seeded merchant cashback offers and their
// activation toggle.
type CashbackService struct {
	store    store.Store
	notifier *NotificationService
	settings *SettingsService
}

func NewCashbackService(st store.Store, notifier *NotificationService, settings *SettingsService) *CashbackService {
	return &CashbackService{store: st, notifier: notifier, settings: settings}
}

func (cb *CashbackService) List(ctx context.Context) []models.CashbackOffer {
	return store.Load(ctx, cb.store, store.KeyCashback, []models.CashbackOffer{})
}

// Activate marks the offer active, persists the collection and emits a
// localized confirmation. Activating an already-active offer is a no-op.
func (cb *CashbackService) Activate(ctx context.Context, offerID string) (models.CashbackOffer, error) {
	offers := cb.List(ctx)
	for i := range offers {
		if offers[i].ID != offerID {
			continue
		}
		if offers[i].Active {
			return offers[i], nil
		}
		offers[i].Active = true
		if err := store.Save(ctx, cb.store, store.KeyCashback, offers); err != nil {
			log.Printf("[CASHBACK] persist offers failed: %v", err)
		}
		lang := cb.settings.Language(ctx)
		cb.notifier.Notify(ctx, fmt.Sprintf(i18n.T(lang, "cashbackActivated"), offers[i].Name))
		return offers[i], nil
	}
	return models.CashbackOffer{}, ErrOfferNotFound
}

// ListOffers lists the cashback offers
// @Summary List cashback offers
// @Tags cashback
// @Produce json
// @Success 200 {array} models.CashbackOffer
// @Router /cashback [get]
func (cb *CashbackService) ListOffers(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, cb.List(r.Context()))
}

// ActivateOffer activates a cashback offer
// @Summary Activate cashback offer
// @Tags cashback
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 200 {object} models.CashbackOffer
// @Failure 404 {object} ErrorResponse
// @Router /cashback/{offerId}/activate [post]
func (cb *CashbackService) ActivateOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := cb.Activate(r.Context(), chi.URLParam(r, "offerId"))
	if err != nil {
		SendErrorResponse(w, "Offer not found", http.StatusNotFound, nil)
		return
	}
	SendJSON(w, http.StatusOK, offer)
}
