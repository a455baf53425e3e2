package backend

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Probe answers "is the backend at addr reachable right now" by dialing a
// separate short-lived connection and releasing it immediately. It never
// touches a serving Client's connection slot, so readiness checks cannot
// race with or invalidate in-flight requests. Bounded by ctx.
func Probe(ctx context.Context, addr string) error {
	probesTotal.Inc()
	conn, err := grpc.DialContext(ctx, dialTarget(addr),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		probeFailuresTotal.Inc()
		return fmt.Errorf("probe %s: %w", addr, err)
	}
	return conn.Close()
}
