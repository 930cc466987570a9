package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/models"
	"github.com/sunubank/demobank/internal/store"
	"golang.org/x/crypto/argon2"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// SessionService handles the simulated login: a single seeded demo profile,
// an argon2id-hashed PIN, a configured latency standing in for the network
// round trip, and a JWT session token. The login flag persisted in the
// store gates every protected screen.
type SessionService struct {
	store    store.Store
	cfg      *config.AppConfig
	notifier *NotificationService
	settings *SettingsService

	pinHash string
}

func NewSessionService(st store.Store, cfg *config.AppConfig, notifier *NotificationService, settings *SettingsService) *SessionService {
	ss := &SessionService{store: st, cfg: cfg, notifier: notifier, settings: settings}

	hash, err := hashPIN(cfg.DemoPIN)
	if err != nil {
		log.Printf("[SESSION] pin hash failed: %v", err)
	}
	ss.pinHash = hash
	return ss
}

// Login verifies the demo credentials after the simulated latency, sets the
// persisted login flag and returns a signed session token.
func (ss *SessionService) Login(ctx context.Context, email, pin string) (string, models.User, error) {
	time.Sleep(ss.cfg.LoginLatency)

	user := ss.CurrentUser(ctx)
	if !strings.EqualFold(strings.TrimSpace(email), user.Email) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if !verifyPIN(pin, ss.pinHash) {
		return "", models.User{}, ErrInvalidCredentials
	}

	if err := store.Save(ctx, ss.store, store.KeyLoggedIn, true); err != nil {
		log.Printf("[SESSION] persist login flag failed: %v", err)
	}

	token, err := generateToken(user.ID)
	if err != nil {
		return "", models.User{}, err
	}

	lang := ss.settings.Language(ctx)
	ss.notifier.Notify(ctx, i18n.T(lang, "welcomeBack"))

	return token, user, nil
}

func (ss *SessionService) Logout(ctx context.Context) {
	if err := store.Save(ctx, ss.store, store.KeyLoggedIn, false); err != nil {
		log.Printf("[SESSION] persist login flag failed: %v", err)
	}
}

func (ss *SessionService) IsLoggedIn(ctx context.Context) bool {
	return store.Load(ctx, ss.store, store.KeyLoggedIn, false)
}

func (ss *SessionService) CurrentUser(ctx context.Context) models.User {
	return store.Load(ctx, ss.store, store.KeyCurrentUser, models.User{})
}

// UpdateAvatar mutates the persisted current user's avatar reference.
func (ss *SessionService) UpdateAvatar(ctx context.Context, avatar string) models.User {
	user := ss.CurrentUser(ctx)
	user.Avatar = avatar
	if err := store.Save(ctx, ss.store, store.KeyCurrentUser, user); err != nil {
		log.Printf("[SESSION] persist user failed: %v", err)
	}

	lang := ss.settings.Language(ctx)
	ss.notifier.Notify(ctx, i18n.T(lang, "avatarUpdated"))
	return user
}

// HandleLogin signs the demo user in
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object{email=string,pin=string} true "Demo credentials"
// @Success 200 {object} object{token=string,user=models.User}
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (ss *SessionService) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		PIN   string `json:"pin"`
	}
	if err := decodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	token, user, err := ss.Login(r.Context(), req.Email, req.PIN)
	if err != nil {
		SendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized, nil)
		return
	}
	SendJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// HandleLogout signs the demo user out
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} object{status=string}
// @Router /auth/logout [post]
func (ss *SessionService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ss.Logout(r.Context())
	SendJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// GetProfile returns the current user
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Router /profile [get]
func (ss *SessionService) GetProfile(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, ss.CurrentUser(r.Context()))
}

// PutAvatar updates the profile avatar reference
// @Summary Update avatar
// @Tags auth
// @Accept json
// @Produce json
// @Param avatar body object{avatar=string} true "Avatar URI or data blob"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Router /profile/avatar [put]
func (ss *SessionService) PutAvatar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := decodeJSONBody(w, r, &req); err != nil || strings.TrimSpace(req.Avatar) == "" {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	SendJSON(w, http.StatusOK, ss.UpdateAvatar(r.Context(), req.Avatar))
}

func generateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})
	return token.SignedString([]byte(viper.GetString("jwt.secret_key")))
}

func hashPIN(pin string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(pin), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func verifyPIN(pin, encoded string) bool {
	parts := strings.SplitN(encoded, ":", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(pin), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}
