package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigglesgo/kv"
	"gigglesgo/notify"
	"gigglesgo/structs"
)

func newTestStore(t *testing.T) (*Store, *notify.Queue) {
	t.Helper()
	q := notify.NewQueue(10)
	t.Cleanup(q.Close)
	return NewStore(kv.NewMemory(), q), q
}

func TestUpdate(t *testing.T) {
	t.Run("flips a recognized boolean leaf", func(t *testing.T) {
		s, q := newTestStore(t)

		require.NoError(t, s.Update("notifications", "weeklyDigest", true))
		assert.True(t, s.Snapshot().Notifications.WeeklyDigest)

		visible := q.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "Settings updated successfully!", visible[0].Message)
	})

	t.Run("unknown group is rejected with no state change", func(t *testing.T) {
		s, q := newTestStore(t)

		err := s.Update("experimental", "darkMode", true)
		var ise *structs.InvalidSettingError
		require.ErrorAs(t, err, &ise)
		assert.Equal(t, "experimental", ise.Group)
		assert.Empty(t, q.Visible())
	})

	t.Run("unknown key inside a known group is rejected", func(t *testing.T) {
		s, _ := newTestStore(t)

		err := s.Update("privacy", "telemetry", false)
		assert.True(t, IsInvalidSetting(err))
		assert.Equal(t, structs.DefaultSettings().Privacy, s.Snapshot().Privacy)
	})

	t.Run("language accepts only the supported set", func(t *testing.T) {
		s, _ := newTestStore(t)

		require.NoError(t, s.Update("app", "language", "creole"))
		assert.Equal(t, "creole", s.Snapshot().App.Language)

		assert.Error(t, s.Update("app", "language", "french"))
		assert.Equal(t, "creole", s.Snapshot().App.Language)
	})

	t.Run("boolean leaf rejects non-boolean values", func(t *testing.T) {
		s, _ := newTestStore(t)
		assert.Error(t, s.Update("app", "darkMode", "yes"))
	})
}

func TestThemePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to light when never set", func(t *testing.T) {
		s, _ := newTestStore(t)
		assert.Equal(t, "light", s.Theme(ctx))
		assert.Equal(t, "standard", s.CulturalVariant(ctx))
	})

	t.Run("round-trips through the key-value store", func(t *testing.T) {
		store := kv.NewMemory()
		q := notify.NewQueue(1)
		t.Cleanup(q.Close)

		s := NewStore(store, q)
		require.NoError(t, s.SetTheme(ctx, "dark"))
		require.NoError(t, s.SetCulturalVariant(ctx, "guyanese"))

		// a fresh store over the same kv sees the persisted values
		s2 := NewStore(store, q)
		assert.Equal(t, "dark", s2.Theme(ctx))
		assert.Equal(t, "guyanese", s2.CulturalVariant(ctx))

		val, err := store.Get(ctx, ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "dark", val)
	})
}
