// Package screens is the flat screen-navigation state machine. There is no
// history stack: back always jumps to home.
package screens

import (
	"fmt"
	"sync"
	"time"

	"gigglesgo/catalog"
	"gigglesgo/structs"
)

type Screen string

const (
	Home         Screen = "home"
	Events       Screen = "events"
	EventDetails Screen = "event-details"
	Map          Screen = "map"
	Saved        Screen = "saved"
	Profile      Screen = "profile"
	Settings     Screen = "settings"
	Help         Screen = "help"
	Feedback     Screen = "feedback"
	Privacy      Screen = "privacy"
	Terms        Screen = "terms"
)

var screens = map[Screen]bool{
	Home: true, Events: true, EventDetails: true, Map: true, Saved: true,
	Profile: true, Settings: true, Help: true, Feedback: true,
	Privacy: true, Terms: true,
}

func Valid(s Screen) bool { return screens[s] }

// Router holds the active screen and the selected event id. The selected
// event is kept by id and resolved against the catalog on read, never copied
// into the router.
type Router struct {
	mu       sync.Mutex
	current  Screen
	selected int
	timer    *time.Timer
}

func NewRouter() *Router {
	return &Router{current: Home}
}

// Navigate jumps to a screen. Unknown screen ids are rejected.
func (r *Router) Navigate(s Screen) error {
	if !Valid(s) {
		return fmt.Errorf("unknown screen %q", s)
	}
	r.mu.Lock()
	r.current = s
	r.mu.Unlock()
	return nil
}

// OpenEvent selects an event and shows its detail screen. The id must exist
// in the catalog.
func (r *Router) OpenEvent(id int) error {
	if _, ok := catalog.EventByID(id); !ok {
		return structs.ErrNotFound
	}
	r.mu.Lock()
	r.selected = id
	r.current = EventDetails
	r.mu.Unlock()
	return nil
}

// GoBack is the fixed back affordance: a flat jump to home.
func (r *Router) GoBack() {
	r.mu.Lock()
	r.current = Home
	r.mu.Unlock()
}

func (r *Router) Current() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Selected resolves the selected event against the catalog.
func (r *Router) Selected() (structs.Event, bool) {
	r.mu.Lock()
	id := r.selected
	r.mu.Unlock()
	if id == 0 {
		return structs.Event{}, false
	}
	return catalog.EventByID(id)
}

// ScheduleHome arms the one timed transition in the app: the sign-out flow
// returns to home after a delay. A newer schedule or Close cancels the
// pending one.
func (r *Router) ScheduleHome(delay time.Duration) {
	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(delay, r.GoBack)
	r.mu.Unlock()
}

// Close cancels any pending timed transition so nothing fires after the
// session is disposed.
func (r *Router) Close() {
	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.mu.Unlock()
}
