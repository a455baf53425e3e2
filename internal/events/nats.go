package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NATSPublisher forwards events to a NATS subject as JSON. Fire and forget:
// nats.Conn buffers writes internally, and publish errors are logged at
// debug and dropped.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	log     zerolog.Logger
}

// NewNATSPublisher connects to the broker at url and publishes to subject.
func NewNATSPublisher(url, subject string, log zerolog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("brainball-gateway"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject, log: log}, nil
}

func (p *NATSPublisher) Publish(e Event) {
	b, err := json.Marshal(e)
	if err != nil {
		p.log.Debug().Err(err).Str("event", e.Name).Msg("event marshal failed")
		return
	}
	if err := p.conn.Publish(p.subject, b); err != nil {
		p.log.Debug().Err(err).Str("event", e.Name).Msg("event publish failed")
	}
}

// Close flushes and closes the broker connection.
func (p *NATSPublisher) Close() {
	p.conn.Close()
}
