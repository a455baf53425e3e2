package events

import "sync"

// MemoryPublisher collects events for test assertions.
type MemoryPublisher struct {
	mu   sync.Mutex
	seen []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, e)
}

// Events returns a snapshot; later publishes do not alter it.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.seen...)
}
