// Package notify holds the ephemeral banner queue and the websocket hub that
// pushes banners to connected rendering clients.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"gigglesgo/utils"
)

// DefaultTTL is the auto-dismiss delay of the simple flow. The enhanced
// stacked flow uses EnhancedTTL unless a banner carries its own TTL.
const (
	DefaultTTL  = 3000 * time.Millisecond
	EnhancedTTL = 4000 * time.Millisecond
)

type BannerType string

const (
	BannerRegistration BannerType = "registration"
	BannerSave         BannerType = "save"
	BannerShare        BannerType = "share"
	BannerAchievement  BannerType = "achievement"
	BannerGeneral      BannerType = "general"
)

// BannerAction is an optional button on an enhanced banner. Do is invoked on
// the UI thread when the user taps it; it never crosses the wire.
type BannerAction struct {
	Label string `json:"label"`
	Do    func() `json:"-"`
}

type Banner struct {
	ID        string        `json:"id"`
	Type      BannerType    `json:"type"`
	Title     string        `json:"title,omitempty"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"createdAt"`
	TTL       time.Duration `json:"ttlMs"`
	Action    *BannerAction `json:"action,omitempty"`
}

// Queue manages visible banners. Capacity 1 reproduces the simple flow where
// a new message replaces the current one; a larger capacity stacks banners
// newest-last, each with an independent TTL.
type Queue struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	banners  []Banner
	timers   map[string]*time.Timer
	hub      *Hub
}

func NewQueue(capacity int) *Queue {
	ttl := DefaultTTL
	if capacity != 1 {
		ttl = EnhancedTTL
	}
	return &Queue{
		capacity: capacity,
		ttl:      ttl,
		timers:   make(map[string]*time.Timer),
	}
}

// AttachHub makes the queue broadcast every change to connected clients.
func (q *Queue) AttachHub(h *Hub) {
	q.mu.Lock()
	q.hub = h
	q.mu.Unlock()
}

// Push is the shorthand used by the stores for a plain text banner.
func (q *Queue) Push(t BannerType, title, message string) Banner {
	return q.Enqueue(Banner{Type: t, Title: title, Message: message})
}

// Enqueue makes a banner visible. Zero fields are defaulted: ID, CreatedAt
// and TTL. When the queue is full the oldest banner is dismissed first, so
// capacity 1 means replace-not-append.
func (q *Queue) Enqueue(b Banner) Banner {
	q.mu.Lock()
	if b.ID == "" {
		b.ID = utils.GetUUID()
	}
	// A caller-supplied CreatedAt means the caller drives time through Tick;
	// only wall-clock banners get an auto-dismiss timer.
	onClock := b.CreatedAt.IsZero()
	if onClock {
		b.CreatedAt = time.Now()
	}
	if b.TTL <= 0 {
		b.TTL = q.ttl
	}
	if b.Type == "" {
		b.Type = BannerGeneral
	}

	for q.capacity > 0 && len(q.banners) >= q.capacity {
		q.removeLocked(q.banners[0].ID)
	}
	q.banners = append(q.banners, b)

	if onClock {
		id := b.ID
		q.timers[id] = time.AfterFunc(b.TTL, func() { q.Dismiss(id) })
	}

	hub := q.hub
	q.mu.Unlock()

	if hub != nil {
		if data, err := json.Marshal(wireEvent{Action: "banner", Banner: &b}); err == nil {
			hub.Broadcast(data)
		}
	}
	return b
}

// Dismiss removes a banner. Dismissing an unknown or already-removed id is a
// no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	removed := q.removeLocked(id)
	hub := q.hub
	q.mu.Unlock()

	if removed && hub != nil {
		if data, err := json.Marshal(wireEvent{Action: "dismiss", ID: id}); err == nil {
			hub.Broadcast(data)
		}
	}
}

// Tick removes every banner whose createdAt+ttl is at or before now. The
// timers normally take care of this; Tick exists for simulated time.
func (q *Queue) Tick(now time.Time) {
	q.mu.Lock()
	var expired []string
	for _, b := range q.banners {
		if !b.CreatedAt.Add(b.TTL).After(now) {
			expired = append(expired, b.ID)
		}
	}
	for _, id := range expired {
		q.removeLocked(id)
	}
	q.mu.Unlock()
}

// Visible returns the banners in display order, oldest first.
func (q *Queue) Visible() []Banner {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Banner, len(q.banners))
	copy(out, q.banners)
	return out
}

// Close cancels every pending auto-dismiss timer. Called when the owning
// session is disposed so no timer fires afterwards.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.banners = nil
}

func (q *Queue) removeLocked(id string) bool {
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	for i, b := range q.banners {
		if b.ID == id {
			q.banners = append(q.banners[:i], q.banners[i+1:]...)
			return true
		}
	}
	return false
}

type wireEvent struct {
	Action string  `json:"action"` // "banner" or "dismiss"
	ID     string  `json:"id,omitempty"`
	Banner *Banner `json:"banner,omitempty"`
}
