package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigglesgo/notify"
	"gigglesgo/structs"
	"gigglesgo/utils"
)

func newTestStore(t *testing.T) (*Store, *notify.Queue) {
	t.Helper()
	q := notify.NewQueue(10)
	t.Cleanup(q.Close)
	return NewStore(q, utils.GetUUID), q
}

func TestSubmit(t *testing.T) {
	t.Run("records the entry and thanks the user", func(t *testing.T) {
		s, q := newTestStore(t)

		entry, err := s.Submit("The map screen is great!")
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.SubmittedAt.IsZero())

		require.Len(t, s.Entries(), 1)

		visible := q.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "Thank you for your feedback! We'll review it shortly.", visible[0].Message)
	})

	t.Run("whitespace-only text is rejected silently", func(t *testing.T) {
		s, q := newTestStore(t)

		_, err := s.Submit("  \n\t ")
		var verrs structs.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Empty(t, s.Entries())
		assert.Empty(t, q.Visible())
	})
}
