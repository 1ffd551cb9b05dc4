package wizard

import (
	"context"
	"sync"

	"gigglesgo/structs"
)

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, sub structs.EventSubmission) error

func (f PublisherFunc) Publish(ctx context.Context, sub structs.EventSubmission) error {
	return f(ctx, sub)
}

// MemoryDrafts keeps saved drafts in memory, newest last.
type MemoryDrafts struct {
	mu     sync.Mutex
	drafts []structs.EventSubmission
}

func NewMemoryDrafts() *MemoryDrafts {
	return &MemoryDrafts{}
}

func (m *MemoryDrafts) SaveDraft(sub structs.EventSubmission) {
	m.mu.Lock()
	m.drafts = append(m.drafts, sub)
	m.mu.Unlock()
}

func (m *MemoryDrafts) Drafts() []structs.EventSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]structs.EventSubmission(nil), m.drafts...)
}

// MemoryPublisher records published submissions; the review pipeline picks
// them up from here.
type MemoryPublisher struct {
	mu        sync.Mutex
	published []structs.EventSubmission
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (m *MemoryPublisher) Publish(_ context.Context, sub structs.EventSubmission) error {
	m.mu.Lock()
	m.published = append(m.published, sub)
	m.mu.Unlock()
	return nil
}

func (m *MemoryPublisher) Published() []structs.EventSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]structs.EventSubmission(nil), m.published...)
}
