package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Login(t *testing.T) {
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 1)

	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("wrong pin", func(t *testing.T) {
		_, _, err := env.session.Login(ctx, "awa.ndiaye@example.com", "000000")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.False(t, env.session.IsLoggedIn(ctx))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := env.session.Login(ctx, "someone@example.com", "123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.False(t, env.session.IsLoggedIn(ctx))
	})

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := env.session.Login(ctx, "Awa.Ndiaye@Example.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, "usr-1", user.ID)
		assert.True(t, env.session.IsLoggedIn(ctx))

		parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims, ok := parsed.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "usr-1", claims["user_id"])

		notifs := env.notifier.List(ctx)
		require.NotEmpty(t, notifs)
		assert.Equal(t, "Bon retour parmi nous", notifs[0].Message)
	})

	t.Run("logout clears the flag", func(t *testing.T) {
		env.session.Logout(ctx)
		assert.False(t, env.session.IsLoggedIn(ctx))
	})
}

func TestSessionService_UpdateAvatar(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.session.UpdateAvatar(ctx, "/static/avatars/custom.png")
	assert.Equal(t, "/static/avatars/custom.png", user.Avatar)

	// persisted, not just returned
	assert.Equal(t, "/static/avatars/custom.png", env.session.CurrentUser(ctx).Avatar)

	notifs := env.notifier.List(ctx)
	require.NotEmpty(t, notifs)
	assert.Equal(t, "Photo de profil mise à jour", notifs[0].Message)
}
