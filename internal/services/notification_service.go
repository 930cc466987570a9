package services

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
)

// Toast is the transient companion of a persisted notification. It lives in
// memory only and auto-expires after the configured TTL.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationService delivers a durable log entry plus an ephemeral toast
// for every user-facing event. The persisted list is capped at
// MaxNotifications, newest kept.
type NotificationService struct {
	store store.Store
	cfg   *config.AppConfig

	mu     sync.Mutex
	toasts []Toast
}

func NewNotificationService(st store.Store, cfg *config.AppConfig) *NotificationService {
	return &NotificationService{store: st, cfg: cfg}
}

// Notify prepends a new unread notification and spawns a toast scheduled
// for removal after the TTL. The scheduled removal is a no-op when the
// toast was dismissed first.
func (ns *NotificationService) Notify(ctx context.Context, message string) models.Notification {
	n := models.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Date:    time.Now(),
		Read:    false,
	}

	list := store.Load(ctx, ns.store, store.KeyNotifications, []models.Notification{})
	list = append([]models.Notification{n}, list...)
	if max := ns.cfg.MaxNotifications; max > 0 && len(list) > max {
		list = list[:max]
	}
	if err := store.Save(ctx, ns.store, store.KeyNotifications, list); err != nil {
		log.Printf("[NOTIFY] persist notification failed: %v", err)
	}

	toast := Toast{ID: uuid.NewString(), Message: message, CreatedAt: time.Now()}
	ns.mu.Lock()
	ns.toasts = append(ns.toasts, toast)
	ns.mu.Unlock()

	time.AfterFunc(ns.cfg.ToastTTL, func() { ns.DismissToast(toast.ID) })

	return n
}

// DismissToast removes the toast with the given id. Removing an absent id
// is a safe no-op, which makes the scheduled auto-removal idempotent.
func (ns *NotificationService) DismissToast(id string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i, t := range ns.toasts {
		if t.ID == id {
			ns.toasts = append(ns.toasts[:i], ns.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns a snapshot of the currently visible toasts.
func (ns *NotificationService) Toasts() []Toast {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	out := make([]Toast, len(ns.toasts))
	copy(out, ns.toasts)
	return out
}

func (ns *NotificationService) List(ctx context.Context) []models.Notification {
	return store.Load(ctx, ns.store, store.KeyNotifications, []models.Notification{})
}

func (ns *NotificationService) UnreadCount(ctx context.Context) int {
	count := 0
	for _, n := range ns.List(ctx) {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flips every stored notification to read. Called when the
// notification panel opens with at least one unread entry.
func (ns *NotificationService) MarkAllRead(ctx context.Context) {
	list := ns.List(ctx)
	changed := false
	for i := range list {
		if !list[i].Read {
			list[i].Read = true
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := store.Save(ctx, ns.store, store.KeyNotifications, list); err != nil {
		log.Printf("[NOTIFY] persist read flags failed: %v", err)
	}
}

// ListNotifications lists the persisted notification log, most recent first
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (ns *NotificationService) ListNotifications(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, ns.List(r.Context()))
}

// MarkNotificationsRead marks the whole log as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} object{unread=int}
// @Router /notifications/read [put]
func (ns *NotificationService) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ns.MarkAllRead(r.Context())
	SendJSON(w, http.StatusOK, map[string]int{"unread": 0})
}

// ListToasts lists the toasts currently on screen
// @Summary List active toasts
// @Tags notifications
// @Produce json
// @Success 200 {array} Toast
// @Router /toasts [get]
func (ns *NotificationService) ListToasts(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, ns.Toasts())
}

// RemoveToast dismisses a toast early
// @Summary Dismiss a toast
// @Tags notifications
// @Produce json
// @Param toastId path string true "Toast ID"
// @Success 200 {object} object{status=string}
// @Router /toasts/{toastId} [delete]
func (ns *NotificationService) RemoveToast(w http.ResponseWriter, r *http.Request) {
	ns.DismissToast(chi.URLParam(r, "toastId"))
	SendJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}
