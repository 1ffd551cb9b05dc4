package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	t.Run("sessions are independent", func(t *testing.T) {
		a := NewApp(Options{})
		b := NewApp(Options{})
		defer a.Close()
		defer b.Close()

		_, err := a.Catalog.ToggleSave(2)
		require.NoError(t, err)

		assert.True(t, a.Catalog.Saved(2))
		assert.False(t, b.Catalog.Saved(2))
	})

	t.Run("stores share one banner queue", func(t *testing.T) {
		app := NewApp(Options{BannerCapacity: 5})
		defer app.Close()

		_, err := app.Catalog.ToggleSave(2)
		require.NoError(t, err)
		require.NoError(t, app.Settings.Update("app", "darkMode", true))

		assert.Len(t, app.Banners.Visible(), 2)
	})

	t.Run("defaults fill in", func(t *testing.T) {
		app := NewApp(Options{})
		defer app.Close()

		assert.NotNil(t, app.KV)
		assert.NotNil(t, app.Signer)
		// capacity defaults to the single-banner flow
		app.Banners.Push("general", "", "one")
		app.Banners.Push("general", "", "two")
		assert.Len(t, app.Banners.Visible(), 1)
	})

	t.Run("close is safe to call", func(t *testing.T) {
		app := NewApp(Options{})
		app.Close()
	})
}
