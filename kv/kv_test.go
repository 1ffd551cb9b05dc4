package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	t.Run("missing key reports ErrNoValue", func(t *testing.T) {
		_, err := m.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNoValue)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "giggles-theme", "dark"))
		val, err := m.Get(ctx, "giggles-theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", val)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, m.Set(ctx, "giggles-theme", "light"))
		val, err := m.Get(ctx, "giggles-theme")
		require.NoError(t, err)
		assert.Equal(t, "light", val)
	})
}
