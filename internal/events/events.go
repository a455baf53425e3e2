// Package events carries per-request gateway events to whoever wants them.
// Publishing is always best-effort: a publisher may drop events but must
// never block or panic, so the response path cannot be hurt by a slow or
// absent consumer.
package events

import "github.com/oklog/ulid/v2"

// Event is one gateway occurrence. Minimal and stable: name plus optional
// fields via key/values.
type Event struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Fields map[string]any `json:"fields,omitempty"`
}

// New builds an event with a fresh ULID.
func New(name string, fields map[string]any) Event {
	return Event{ID: ulid.Make().String(), Name: name, Fields: fields}
}

// Publisher receives gateway events. Implementations must be lightweight and
// non-blocking; Publish must not panic.
type Publisher interface {
	Publish(Event)
}

// Noop drops events. The default when no publisher is configured.
type Noop struct{}

func (Noop) Publish(Event) {}
