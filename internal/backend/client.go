// Package backend owns the gateway's connection to the word2animal gRPC
// service: one shared connection slot, dialed lazily, discarded on failure
// and re-dialed on the next request. It also provides the standalone
// readiness probe.
package backend

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	_ "google.golang.org/grpc/resolver/dns"

	"brainball/api/pkg/w2apb"
)

// Client maintains at most one live connection to the backend and exposes
// the single GetAnimal operation. Safe for concurrent use: the connection
// slot is mutex-guarded, the RPC itself runs outside the lock.
//
// The client never retries internally. One GetAnimal call performs at most
// one dial plus one RPC; retry policy belongs to the caller.
type Client struct {
	addr string
	log  zerolog.Logger

	mu           sync.Mutex
	conn         *grpc.ClientConn
	rpc          w2apb.Word2AnimalClient
	dials        int64
	dialFailures int64
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client's logger. Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns an unconnected client for the backend at addr. No dial happens
// until Connect or the first GetAnimal.
func New(addr string, opts ...Option) *Client {
	c := &Client{addr: addr, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Addr returns the configured backend address.
func (c *Client) Addr() string { return c.addr }

// Connect dials the backend, blocking until the connection is ready or ctx
// expires, and replaces any previously held connection. Used for the
// opportunistic startup dial; failure leaves the client usable (the next
// GetAnimal dials again).
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	conn, err := c.dialLocked(ctx)
	if err != nil {
		return err
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = conn
	c.rpc = w2apb.NewWord2AnimalClient(conn)
	return nil
}

// GetAnimal issues one inference call bounded by ctx. If no connection is
// held, exactly one dial is attempted first. The outcome is always one of
// the four Result variants; on Unavailable or DeadlineExceeded the held
// connection has already been discarded so the next request starts clean.
func (c *Client) GetAnimal(ctx context.Context, text string) Result {
	start := time.Now()
	conn, rpc, err := c.ensure(ctx)
	if err != nil {
		// A failed dial is unavailability no matter how it failed, even when
		// the dial burned the whole budget waiting.
		res := Result{Outcome: OutcomeUnavailable, Err: err}
		observeCall(res.Outcome, start)
		return res
	}

	resp, err := rpc.GetAnimal(ctx, &w2apb.GetAnimalRequest{Text: text})
	if err != nil {
		res := classify(err)
		if res.Outcome != OutcomeInvalidArgument {
			c.invalidate(conn)
			c.log.Warn().Err(err).Str("outcome", res.Outcome.String()).Msg("backend call failed, connection discarded")
		}
		observeCall(res.Outcome, start)
		return res
	}
	observeCall(OutcomeOK, start)
	return Result{Outcome: OutcomeOK, Animal: resp.Animal, Confidence: resp.Confidence}
}

// Ready reports whether the backend is reachable right now. Delegates to
// Probe, so it uses its own short-lived connection and never touches the
// serving slot.
func (c *Client) Ready(ctx context.Context) error {
	return Probe(ctx, c.addr)
}

// Close releases the held connection, if any. Idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.rpc = nil
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Stats reports the client's connection state for diagnostics.
type Stats struct {
	Addr         string
	Connected    bool
	Dials        int64
	DialFailures int64
}

func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Addr:         c.addr,
		Connected:    c.conn != nil,
		Dials:        c.dials,
		DialFailures: c.dialFailures,
	}
}

// ensure returns the held connection, dialing one if the slot is empty. The
// lock covers the whole check-or-dial sequence so concurrent requests never
// dial redundantly: the first one dials, the rest wait and share its result.
func (c *Client) ensure(ctx context.Context) (*grpc.ClientConn, w2apb.Word2AnimalClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		conn, err := c.dialLocked(ctx)
		if err != nil {
			return nil, nil, err
		}
		c.conn = conn
		c.rpc = w2apb.NewWord2AnimalClient(conn)
	}
	return c.conn, c.rpc, nil
}

// invalidate clears the connection slot if it still holds conn, then closes
// conn. Compare-and-clear: a newer connection installed by another request
// is left alone.
func (c *Client) invalidate(conn *grpc.ClientConn) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.rpc = nil
	}
	c.mu.Unlock()
	conn.Close()
}

// dialLocked performs one blocking dial bounded by ctx. Caller holds c.mu.
func (c *Client) dialLocked(ctx context.Context) (*grpc.ClientConn, error) {
	c.dials++
	dialsTotal.Inc()
	conn, err := grpc.DialContext(ctx, dialTarget(c.addr),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		c.dialFailures++
		dialFailuresTotal.Inc()
		c.log.Warn().Err(err).Str("addr", c.addr).Msg("backend dial failed")
		return nil, fmt.Errorf("word2animal dial: %w", err)
	}
	c.log.Debug().Str("addr", c.addr).Msg("backend connected")
	return conn, nil
}

// dialTarget normalizes addr into a gRPC dial target. Bare host:port becomes
// dns:///host:port so container DNS resolves; targets that already carry a
// scheme pass through.
func dialTarget(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" || strings.Contains(addr, "://") {
		return addr
	}
	return "dns:///" + addr
}
