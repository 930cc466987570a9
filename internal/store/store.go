package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Keys are namespaced per entity so collections can never collide.
const (
	keyPrefix = "sunubank:"

	KeyLoggedIn      = keyPrefix + "session.logged-in"
	KeyCurrentUser   = keyPrefix + "session.current-user"
	KeyLanguage      = keyPrefix + "settings.language"
	KeyNotifications = keyPrefix + "notifications"
	KeyTransactions  = keyPrefix + "transactions"
	KeyAccounts      = keyPrefix + "accounts"
	KeyCards         = keyPrefix + "cards"
	KeyGoals         = keyPrefix + "goals"
	KeyCashback      = keyPrefix + "cashback"
)

// ErrNotFound is returned by Get when no value has been written to a key.
var ErrNotFound = errors.New("store: key not found")

// Store is durable key-scoped storage for the domain entities. Every write
// is a full-value overwrite with last-write-wins semantics; Subscribe
// delivers a change signal so other views of the same key can re-read
// instead of echoing stale state back.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Subscribe(key string, fn func())
	Close() error
}

// Load reads and decodes the value at key. On absence or a corrupt value it
// returns def; deserialization failure is never surfaced to the caller.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	data, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[STORE] read %s failed, using default: %v", key, err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("[STORE] corrupt value at %s, using default: %v", key, err)
		return def
	}
	return v
}

// Save serializes v and overwrites key. Write errors are returned so the
// caller can log them; they are never shown to the user.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
