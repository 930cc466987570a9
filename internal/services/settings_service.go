package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/store"
)

// ErrUnknownLanguage rejects writes outside the {FR, EN} enumeration. Reads
// never fail; they fall back to the configured default instead.
var ErrUnknownLanguage = errors.New("unknown language")

type SettingsService struct {
	store store.Store
	cfg   *config.AppConfig
}

func NewSettingsService(st store.Store, cfg *config.AppConfig) *SettingsService {
	return &SettingsService{store: st, cfg: cfg}
}

// Language returns the active display language. A missing or unrecognized
// stored value silently resolves to the configured default.
func (ss *SettingsService) Language(ctx context.Context) i18n.Language {
	raw := store.Load(ctx, ss.store, store.KeyLanguage, ss.cfg.DefaultLanguage)
	if lang := i18n.Language(raw); lang.Valid() {
		return lang
	}
	return i18n.Parse(ss.cfg.DefaultLanguage)
}

func (ss *SettingsService) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if !lang.Valid() {
		return ErrUnknownLanguage
	}
	if err := store.Save(ctx, ss.store, store.KeyLanguage, string(lang)); err != nil {
		log.Printf("[SETTINGS] persist language failed: %v", err)
		return err
	}
	return nil
}

// GetLanguage returns the active display language
// @Summary Get display language
// @Tags settings
// @Produce json
// @Success 200 {object} object{language=string}
// @Router /settings/language [get]
func (ss *SettingsService) GetLanguage(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, map[string]string{"language": string(ss.Language(r.Context()))})
}

// PutLanguage switches the display language
// @Summary Set display language
// @Tags settings
// @Accept json
// @Produce json
// @Param language body object{language=string} true "FR or EN"
// @Success 200 {object} object{language=string}
// @Failure 400 {object} ErrorResponse
// @Router /settings/language [put]
func (ss *SettingsService) PutLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := decodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	lang := i18n.Language(req.Language)
	if err := ss.SetLanguage(r.Context(), lang); err != nil {
		if errors.Is(err, ErrUnknownLanguage) {
			SendErrorResponse(w, "Unknown language", http.StatusBadRequest, nil)
			return
		}
		SendErrorResponse(w, "Failed to persist language", http.StatusInternalServerError, nil)
		return
	}
	SendJSON(w, http.StatusOK, map[string]string{"language": string(lang)})
}

