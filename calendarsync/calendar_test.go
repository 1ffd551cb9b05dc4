package calendarsync

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigglesgo/catalog"
)

func TestEventWindow(t *testing.T) {
	ev, ok := catalog.EventByID(1) // Dec 28, 2024 at 10:00 AM
	require.True(t, ok)

	start, end, err := EventWindow(ev)
	require.NoError(t, err)

	// 10:00 in Georgetown is 14:00 UTC
	assert.Equal(t, "20241228T140000Z", start.UTC().Format(compactUTC))
	assert.Equal(t, end, start.Add(defaultDuration))
}

func TestLinkFor(t *testing.T) {
	ev, ok := catalog.EventByID(1)
	require.True(t, ok)

	t.Run("google", func(t *testing.T) {
		link, err := LinkFor(Google, ev)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "https://calendar.google.com/calendar/render?action=TEMPLATE"))
		assert.Contains(t, link, "&dates=20241228T140000Z/20241228T160000Z")
		assert.Contains(t, link, "&sf=true&output=xml")
		assert.Contains(t, link, "Georgetown%20Children%27s%20Festival")
		assert.NotContains(t, link, "+")
	})

	t.Run("outlook uses full timestamps", func(t *testing.T) {
		link, err := LinkFor(Outlook, ev)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "https://outlook.live.com/calendar/0/deeplink/compose?"))
		assert.Contains(t, link, "startdt=2024-12-28T14%3A00%3A00Z")
	})

	t.Run("yahoo", func(t *testing.T) {
		link, err := LinkFor(Yahoo, ev)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "https://calendar.yahoo.com/?v=60&view=d&type=20"))
		assert.Contains(t, link, "&st=20241228T140000Z")
		assert.Contains(t, link, "&et=20241228T160000Z")
	})

	t.Run("apple has no deep link", func(t *testing.T) {
		_, err := LinkFor(Apple, ev)
		assert.Error(t, err)
	})
}

func TestToICS(t *testing.T) {
	ev, ok := catalog.EventByID(1)
	require.True(t, ok)

	doc, err := ToICS(ev)
	require.NoError(t, err)

	t.Run("carries the expected fields", func(t *testing.T) {
		assert.Contains(t, doc, "PRODID:-//Giggles & Go GY//Event Calendar//EN")
		assert.Contains(t, doc, "UID:1@gigglesandgo.gy")
		assert.Contains(t, doc, "SUMMARY:Georgetown Children's Festival")
		assert.Contains(t, doc, "LOCATION:National Park")
		assert.Contains(t, doc, "STATUS:CONFIRMED")
		assert.Contains(t, doc, "DTSTART:20241228T140000Z")
	})

	t.Run("includes the 15 minute reminder alarm", func(t *testing.T) {
		assert.Contains(t, doc, "BEGIN:VALARM")
		assert.Contains(t, doc, "TRIGGER:-PT15M")
		assert.Contains(t, doc, "ACTION:DISPLAY")
	})

	t.Run("output is deterministic", func(t *testing.T) {
		again, err := ToICS(ev)
		require.NoError(t, err)
		assert.Equal(t, doc, again)
	})

	t.Run("exactly one event block", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(doc, "BEGIN:VEVENT"))
	})
}

func TestICSFilename(t *testing.T) {
	ev, ok := catalog.EventByID(1)
	require.True(t, ok)
	assert.Equal(t, "georgetown_children_s_festival.ics", ICSFilename(ev))
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.Synced(1))

	h.Record(1, Google)
	h.Record(3, Apple)

	assert.True(t, h.Synced(1))
	assert.False(t, h.Synced(2))

	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, Google, records[0].Provider)
	assert.False(t, records[0].SyncedAt.IsZero())
}
