package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

// GoalService handles savings-goal creation. Goals start at zero and only
// move through future manual top-ups.
type GoalService struct {
	store    store.Store
	cfg      *config.AppConfig
	notifier *NotificationService
	settings *SettingsService
}

func NewGoalService(st store.Store, cfg *config.AppConfig, notifier *NotificationService, settings *SettingsService) *GoalService {
	return &GoalService{store: st, cfg: cfg, notifier: notifier, settings: settings}
}

func (gs *GoalService) List(ctx context.Context) []models.Goal {
	return store.Load(ctx, gs.store, store.KeyGoals, []models.Goal{})
}

// Create validates and persists a new goal and emits a confirmation
// notification. An empty name or target is a silent no-op: nil goal, nil
// error, nothing persisted. A non-numeric or non-positive target is an
// error.
func (gs *GoalService) Create(ctx context.Context, name, targetAmount, icon string) (*models.Goal, error) {
	name = strings.TrimSpace(name)
	targetAmount = strings.TrimSpace(targetAmount)
	if name == "" || targetAmount == "" {
		return nil, nil
	}

	target, err := strconv.ParseInt(targetAmount, 10, 64)
	if err != nil || target <= 0 {
		return nil, fmt.Errorf("invalid target amount %q", targetAmount)
	}

	goal := models.Goal{
		ID:            uuid.NewString(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: 0,
		Currency:      gs.cfg.Currency,
		Icon:          icon,
	}

	goals := append(gs.List(ctx), goal)
	if err := store.Save(ctx, gs.store, store.KeyGoals, goals); err != nil {
		log.Printf("[GOALS] persist goals failed: %v", err)
	}

	lang := gs.settings.Language(ctx)
	gs.notifier.Notify(ctx, fmt.Sprintf(i18n.T(lang, "goalCreated"), goal.Name))

	return &goal, nil
}

// ListGoals lists the savings goals
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} models.Goal
// @Router /goals [get]
func (gs *GoalService) ListGoals(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, gs.List(r.Context()))
}

// CreateGoal creates a savings goal
// @Summary Create goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body object{name=string,targetAmount=string,icon=string} true "Goal data"
// @Success 201 {object} models.Goal
// @Success 204 "Empty input, nothing created"
// @Failure 400 {object} ErrorResponse
// @Router /goals [post]
func (gs *GoalService) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		TargetAmount string `json:"targetAmount"`
		Icon         string `json:"icon"`
	}
	if err := decodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	goal, err := gs.Create(r.Context(), req.Name, req.TargetAmount, req.Icon)
	if err != nil {
		SendErrorResponse(w, "Invalid target amount", http.StatusBadRequest, nil)
		return
	}
	if goal == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	SendJSON(w, http.StatusCreated, goal)
}
