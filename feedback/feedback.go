// Package feedback collects free-text app feedback from the help screen.
package feedback

import (
	"strings"
	"sync"
	"time"

	"gigglesgo/notify"
	"gigglesgo/structs"
)

type Entry struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Store struct {
	mu      sync.Mutex
	entries []Entry
	banners *notify.Queue
	now     func() time.Time
	newID   func() string
}

func NewStore(banners *notify.Queue, newID func() string) *Store {
	return &Store{banners: banners, now: time.Now, newID: newID}
}

// Submit records the feedback. Whitespace-only text is rejected with no
// state change and no banner.
func (s *Store) Submit(text string) (Entry, error) {
	if strings.TrimSpace(text) == "" {
		return Entry{}, structs.ValidationErrors{"feedback": "Feedback text is required"}
	}

	entry := Entry{ID: s.newID(), Text: text, SubmittedAt: s.now()}
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.banners.Push(notify.BannerGeneral, "Feedback", "Thank you for your feedback! We'll review it shortly.")
	return entry, nil
}

func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}
