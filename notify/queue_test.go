package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueue(t *testing.T) {
	t.Run("defaults are filled in", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		b := q.Push(BannerSave, "Saved", "Event saved successfully!")
		assert.NotEmpty(t, b.ID)
		assert.False(t, b.CreatedAt.IsZero())
		assert.Equal(t, DefaultTTL, b.TTL)
	})

	t.Run("capacity one replaces instead of stacking", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		q.Push(BannerGeneral, "", "first")
		q.Push(BannerGeneral, "", "second")

		visible := q.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "second", visible[0].Message)
	})

	t.Run("larger capacities stack newest last and evict oldest", func(t *testing.T) {
		q := NewQueue(3)
		defer q.Close()

		for _, msg := range []string{"a", "b", "c", "d"} {
			q.Push(BannerGeneral, "", msg)
		}

		visible := q.Visible()
		require.Len(t, visible, 3)
		assert.Equal(t, "b", visible[0].Message)
		assert.Equal(t, "d", visible[2].Message)
	})

	t.Run("enhanced queues default to the longer ttl", func(t *testing.T) {
		q := NewQueue(3)
		defer q.Close()

		b := q.Push(BannerAchievement, "", "badge unlocked")
		assert.Equal(t, EnhancedTTL, b.TTL)
	})
}

func TestTick(t *testing.T) {
	base := time.Date(2025, 1, 4, 11, 0, 0, 0, time.UTC)

	t.Run("banner survives just before its deadline", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		q.Enqueue(Banner{Message: "hello", CreatedAt: base})
		q.Tick(base.Add(2999 * time.Millisecond))
		assert.Len(t, q.Visible(), 1)
	})

	t.Run("banner is gone at its deadline", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		q.Enqueue(Banner{Message: "hello", CreatedAt: base})
		q.Tick(base.Add(3000 * time.Millisecond))
		assert.Empty(t, q.Visible())
	})

	t.Run("stacked banners expire independently", func(t *testing.T) {
		q := NewQueue(5)
		defer q.Close()

		q.Enqueue(Banner{Message: "old", CreatedAt: base})
		q.Enqueue(Banner{Message: "new", CreatedAt: base.Add(2 * time.Second)})

		q.Tick(base.Add(4 * time.Second))
		visible := q.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "new", visible[0].Message)
	})
}

func TestDismiss(t *testing.T) {
	t.Run("dismiss removes the banner", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		b := q.Push(BannerGeneral, "", "bye")
		q.Dismiss(b.ID)
		assert.Empty(t, q.Visible())
	})

	t.Run("dismissing twice is harmless", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		b := q.Push(BannerGeneral, "", "bye")
		q.Dismiss(b.ID)
		q.Dismiss(b.ID)
		q.Dismiss("never-existed")
		assert.Empty(t, q.Visible())
	})
}

func TestAutoDismissTimer(t *testing.T) {
	t.Run("a short ttl fires on the wall clock", func(t *testing.T) {
		q := NewQueue(1)
		defer q.Close()

		q.Enqueue(Banner{Message: "blink", TTL: 20 * time.Millisecond})

		assert.Eventually(t, func() bool {
			return len(q.Visible()) == 0
		}, time.Second, 5*time.Millisecond)
	})
}
