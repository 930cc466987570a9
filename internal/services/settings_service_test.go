package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunubank/demobank/internal/i18n"
	"github.com/sunubank/demobank/internal/store"
)

func TestSettingsService_Language(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("defaults to french", func(t *testing.T) {
		assert.Equal(t, i18n.LangFR, env.settings.Language(ctx))
	})

	t.Run("a valid switch persists", func(t *testing.T) {
		require.NoError(t, env.settings.SetLanguage(ctx, i18n.LangEN))
		assert.Equal(t, i18n.LangEN, env.settings.Language(ctx))
	})

	t.Run("unknown languages are rejected", func(t *testing.T) {
		err := env.settings.SetLanguage(ctx, i18n.Language("DE"))
		assert.ErrorIs(t, err, ErrUnknownLanguage)
		assert.Equal(t, i18n.LangEN, env.settings.Language(ctx))
	})

	t.Run("a corrupt stored value falls back to the default", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, env.st, store.KeyLanguage, "WO"))
		assert.Equal(t, i18n.LangFR, env.settings.Language(ctx))
	})
}
