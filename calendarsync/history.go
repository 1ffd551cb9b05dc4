package calendarsync

import (
	"sync"
	"time"
)

// SyncRecord remembers one completed add-to-calendar action.
type SyncRecord struct {
	EventID  int       `json:"eventId"`
	Provider Provider  `json:"provider"`
	SyncedAt time.Time `json:"syncedAt"`
}

// History is the per-session log of calendar syncs, newest last.
type History struct {
	mu      sync.Mutex
	records []SyncRecord
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

func (h *History) Record(eventID int, p Provider) SyncRecord {
	rec := SyncRecord{EventID: eventID, Provider: p, SyncedAt: h.now()}
	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()
	return rec
}

func (h *History) Records() []SyncRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]SyncRecord(nil), h.records...)
}

// Synced reports whether the event has ever been synced this session, to any
// provider.
func (h *History) Synced(eventID int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, rec := range h.records {
		if rec.EventID == eventID {
			return true
		}
	}
	return false
}
