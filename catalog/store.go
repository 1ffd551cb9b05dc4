package catalog

import (
	"strings"
	"sync"

	"gigglesgo/notify"
	"gigglesgo/structs"
)

// Store keeps the per-session derived state: the saved set, the registered
// set, the question log and the active filter chip. Every mutation validates
// the event id against the catalog first; an unknown id never touches state.
type Store struct {
	mu         sync.Mutex
	saved      map[int]struct{}
	registered map[int]struct{}
	questions  map[int]string
	activeChip string
	banners    *notify.Queue
}

func NewStore(banners *notify.Queue) *Store {
	s := &Store{
		saved:      make(map[int]struct{}),
		registered: make(map[int]struct{}),
		questions:  make(map[int]string),
		banners:    banners,
	}
	// the demo profile starts with two bookmarked events
	s.saved[1] = struct{}{}
	s.saved[3] = struct{}{}
	return s
}

// FilteredByChip returns events whose category matches the chip exactly. An
// empty chip id returns the whole catalog.
func FilteredByChip(chipID string) []structs.Event {
	if chipID == "" {
		return Events()
	}
	chip, ok := chipByID(chipID)
	if !ok {
		return Events()
	}
	var out []structs.Event
	for _, ev := range Events() {
		if ev.Category == chip.Category {
			out = append(out, ev)
		}
	}
	return out
}

// Search matches the query case-insensitively against title OR location.
// An empty query returns the full catalog in original order.
func Search(query string) []structs.Event {
	q := strings.ToLower(query)
	if q == "" {
		return Events()
	}
	var out []structs.Event
	for _, ev := range Events() {
		if strings.Contains(strings.ToLower(ev.Title), q) ||
			strings.Contains(strings.ToLower(ev.Location), q) {
			out = append(out, ev)
		}
	}
	return out
}

// ToggleChip activates a chip, or clears the filter when the chip is already
// active. It returns the new active chip id ("" when cleared).
func (s *Store) ToggleChip(chipID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeChip == chipID {
		s.activeChip = ""
	} else if _, ok := chipByID(chipID); ok {
		s.activeChip = chipID
	}
	return s.activeChip
}

func (s *Store) ActiveChip() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChip
}

// Filtered applies the currently active chip.
func (s *Store) Filtered() []structs.Event {
	return FilteredByChip(s.ActiveChip())
}

// ToggleSave flips membership in the saved set and reports the resulting
// state. Unknown ids are rejected with ErrNotFound and no banner.
func (s *Store) ToggleSave(id int) (bool, error) {
	if _, ok := EventByID(id); !ok {
		return false, structs.ErrNotFound
	}

	s.mu.Lock()
	_, saved := s.saved[id]
	if saved {
		delete(s.saved, id)
	} else {
		s.saved[id] = struct{}{}
	}
	s.mu.Unlock()

	if saved {
		s.banners.Push(notify.BannerSave, "Removed", "Event removed from saved")
		return false, nil
	}
	s.banners.Push(notify.BannerSave, "Saved", "Event saved successfully!")
	return true, nil
}

func (s *Store) Saved(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.saved[id]
	return ok
}

// SavedEvents returns the bookmarked subset in catalog order, not in the
// order the bookmarks were made.
func (s *Store) SavedEvents() []structs.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []structs.Event
	for _, ev := range Events() {
		if _, ok := s.saved[ev.ID]; ok {
			out = append(out, ev)
		}
	}
	return out
}

// Register adds the event to the registered set. Registering twice is a
// no-op; the set never holds duplicates. Unknown ids return ErrNotFound.
func (s *Store) Register(id int) error {
	if _, ok := EventByID(id); !ok {
		return structs.ErrNotFound
	}

	s.mu.Lock()
	_, already := s.registered[id]
	s.registered[id] = struct{}{}
	s.mu.Unlock()

	if !already {
		s.banners.Push(notify.BannerRegistration, "Registered", "Registration successful! Confirmation email sent.")
	}
	return nil
}

func (s *Store) Registered(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.registered[id]
	return ok
}

func (s *Store) RegisteredIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []int
	for _, ev := range Events() {
		if _, ok := s.registered[ev.ID]; ok {
			out = append(out, ev.ID)
		}
	}
	return out
}

// SubmitQuestion stores the latest question for an event, overwriting any
// earlier one. Blank text is rejected with no state change and no banner.
func (s *Store) SubmitQuestion(id int, text string) error {
	if _, ok := EventByID(id); !ok {
		return structs.ErrNotFound
	}
	if strings.TrimSpace(text) == "" {
		return structs.ValidationErrors{"question": "Question text is required"}
	}

	s.mu.Lock()
	s.questions[id] = text
	s.mu.Unlock()

	s.banners.Push(notify.BannerGeneral, "Question sent", "Question sent to organizer. They'll respond within 24 hours.")
	return nil
}

func (s *Store) Question(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.questions[id]
	return text, ok
}
