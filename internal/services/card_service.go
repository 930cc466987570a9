package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

var ErrCardNotFound = errors.New("card not found")

// CardService manages the card collection, in particular the freeze toggle.
// It subscribes to the store's change signal for the card key so a mutation
// made by another view is re-read instead of being overwritten with a stale
// snapshot.
type CardService struct {
	store    store.Store
	notifier *NotificationService
	settings *SettingsService

	mu     sync.RWMutex
	cached []models.Card
}

func NewCardService(st store.Store, notifier *NotificationService, settings *SettingsService) *CardService {
	cs := &CardService{store: st, notifier: notifier, settings: settings}
	cs.reload()
	st.Subscribe(store.KeyCards, cs.reload)
	return cs
}

// reload refreshes the in-memory view from the store; fired on mount and on
// every cross-view change signal.
func (cs *CardService) reload() {
	cards := store.Load(context.Background(), cs.store, store.KeyCards, []models.Card{})
	cs.mu.Lock()
	cs.cached = cards
	cs.mu.Unlock()
}

func (cs *CardService) List(ctx context.Context) []models.Card {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]models.Card, len(cs.cached))
	copy(out, cs.cached)
	return out
}

// ToggleFreeze flips active<->frozen for exactly the matching card and
// persists the full collection. It always works off the latest persisted
// version, never the cache, to avoid echoing a stale status back.
func (cs *CardService) ToggleFreeze(ctx context.Context, cardID string) (models.Card, error) {
	cards := store.Load(ctx, cs.store, store.KeyCards, []models.Card{})

	idx := -1
	for i := range cards {
		if cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Card{}, ErrCardNotFound
	}

	if cards[idx].Status == models.CardStatusActive {
		cards[idx].Status = models.CardStatusFrozen
	} else {
		cards[idx].Status = models.CardStatusActive
	}

	if err := store.Save(ctx, cs.store, store.KeyCards, cards); err != nil {
		log.Printf("[CARDS] persist cards failed: %v", err)
	}

	lang := cs.settings.Language(ctx)
	msgKey := "cardFrozen"
	if cards[idx].Status == models.CardStatusActive {
		msgKey = "cardUnfrozen"
	}
	cs.notifier.Notify(ctx, i18n.T(lang, msgKey))

	return cards[idx], nil
}

// ListCards lists the user's cards
// @Summary List cards
// @Tags cards
// @Produce json
// @Success 200 {array} models.Card
// @Router /cards [get]
func (cs *CardService) ListCards(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, cs.List(r.Context()))
}

// FreezeToggle toggles a card between active and frozen
// @Summary Toggle card freeze
// @Tags cards
// @Produce json
// @Param cardId path string true "Card ID"
// @Success 200 {object} models.Card
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardId}/freeze [put]
func (cs *CardService) FreezeToggle(w http.ResponseWriter, r *http.Request) {
	card, err := cs.ToggleFreeze(r.Context(), chi.URLParam(r, "cardId"))
	if err != nil {
		SendErrorResponse(w, "Card not found", http.StatusNotFound, nil)
		return
	}
	SendJSON(w, http.StatusOK, card)
}
