package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
}

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "sunubank:missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_LastWriteWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte(`"first"`)))
	require.NoError(t, m.Set(ctx, "k", []byte(`"second"`)))

	data, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"second"`, string(data))
}

func TestMemory_SetCopiesValue(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	value := []byte(`"original"`)
	require.NoError(t, m.Set(ctx, "k", value))
	value[1] = 'X'

	data, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"original"`, string(data))
}

func TestMemory_Subscribe(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	fired := 0
	m.Subscribe("watched", func() { fired++ })

	require.NoError(t, m.Set(ctx, "watched", []byte(`1`)))
	require.NoError(t, m.Set(ctx, "other", []byte(`2`)))
	require.NoError(t, m.Set(ctx, "watched", []byte(`3`)))

	assert.Equal(t, 2, fired)
}

func TestLoad(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	t.Run("missing key returns default", func(t *testing.T) {
		got := Load(ctx, m, "absent", []entry{{ID: "fallback"}})
		require.Len(t, got, 1)
		assert.Equal(t, "fallback", got[0].ID)
	})

	t.Run("corrupt value returns default", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "corrupt", []byte("{not json")))
		got := Load(ctx, m, "corrupt", []entry{})
		assert.Empty(t, got)
	})

	t.Run("round trip preserves dates", func(t *testing.T) {
		date := time.Date(2026, time.March, 14, 9, 26, 53, 589_000_000, time.UTC)
		require.NoError(t, Save(ctx, m, "entries", []entry{{ID: "e1", Date: date}}))

		got := Load(ctx, m, "entries", []entry{})
		require.Len(t, got, 1)
		assert.True(t, got[0].Date.Equal(date))
	})
}
