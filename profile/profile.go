// Package profile keeps the family profile. The adult's identity fields edit
// through a staged draft committed or discarded as a unit; the children list
// edits in place with no draft.
package profile

import (
	"sync"

	"gigglesgo/notify"
	"gigglesgo/structs"
)

const (
	minChildAge = 0
	maxChildAge = 18

	defaultChildAge = 5
)

// Patch carries the staged identity edits. Nil fields are left untouched.
type Patch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
}

type Store struct {
	mu      sync.Mutex
	current structs.UserProfile
	draft   *structs.UserProfile
	nextID  int
	banners *notify.Queue
}

func NewStore(banners *notify.Queue) *Store {
	return &Store{
		current: structs.UserProfile{
			Name:     "Sarah Johnson",
			Email:    "sarah.johnson@email.com",
			Location: "Georgetown, Guyana",
			Phone:    "+592-123-4567",
			Children: []structs.Child{
				{ID: 1, Name: "Emma", Age: 6},
				{ID: 2, Name: "Liam", Age: 9},
			},
		},
		nextID:  3,
		banners: banners,
	}
}

func (s *Store) Profile() structs.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.current)
}

// BeginEdit opens a draft seeded from the committed profile. Re-opening an
// already open draft resets it.
func (s *Store) BeginEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := cloneProfile(s.current)
	s.draft = &d
}

func (s *Store) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft != nil
}

// UpdateDraft applies a patch to the open draft. Without an open draft it is
// a no-op; nothing reaches the committed profile.
func (s *Store) UpdateDraft(p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return
	}
	if p.Name != nil {
		s.draft.Name = *p.Name
	}
	if p.Email != nil {
		s.draft.Email = *p.Email
	}
	if p.Location != nil {
		s.draft.Location = *p.Location
	}
	if p.Phone != nil {
		s.draft.Phone = *p.Phone
	}
}

// Commit publishes the draft and closes it. Committing without an open draft
// does nothing and emits no banner.
func (s *Store) Commit() bool {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return false
	}
	// children edits land directly on current, so carry them over
	s.draft.Children = s.current.Children
	s.current = *s.draft
	s.draft = nil
	s.mu.Unlock()

	s.banners.Push(notify.BannerSave, "Profile", "Profile updated successfully!")
	return true
}

// Discard drops the draft; the committed profile is untouched.
func (s *Store) Discard() {
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
}

// AddChild appends a placeholder entry immediately, no draft involved. The
// caller fills in the details afterwards.
func (s *Store) AddChild() structs.Child {
	s.mu.Lock()
	child := structs.Child{ID: s.nextID, Name: "", Age: defaultChildAge}
	s.nextID++
	s.current.Children = append(s.current.Children, child)
	s.mu.Unlock()

	s.banners.Push(notify.BannerGeneral, "Child added", "New child added! Please enter their details.")
	return child
}

// UpdateChild edits a child in place. Ages clamp into [0, 18].
func (s *Store) UpdateChild(id int, name string, age int) error {
	if age < minChildAge {
		age = minChildAge
	}
	if age > maxChildAge {
		age = maxChildAge
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.current.Children {
		if s.current.Children[i].ID == id {
			s.current.Children[i].Name = name
			s.current.Children[i].Age = age
			return nil
		}
	}
	return structs.ErrNotFound
}

func (s *Store) RemoveChild(id int) error {
	s.mu.Lock()
	name := ""
	idx := -1
	for i, c := range s.current.Children {
		if c.ID == id {
			idx, name = i, c.Name
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return structs.ErrNotFound
	}
	s.current.Children = append(s.current.Children[:idx], s.current.Children[idx+1:]...)
	s.mu.Unlock()

	if name == "" {
		name = "Child"
	}
	s.banners.Push(notify.BannerGeneral, "Child removed", name+" removed from profile")
	return nil
}

func cloneProfile(p structs.UserProfile) structs.UserProfile {
	out := p
	out.Children = append([]structs.Child(nil), p.Children...)
	return out
}
