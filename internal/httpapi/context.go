package httpapi

import (
	"context"
)

// serverBaseCtx is canceled when the process begins shutdown. Every backend
// call derives from it, so draining the HTTP server also unsticks calls
// waiting on a dead word2animal backend.
var serverBaseCtx = context.Background()

// SetBaseContext installs the process-level context joined into every
// backend call. Passing nil restores context.Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	serverBaseCtx = ctx
}

// joinContexts derives a context canceled when either base or req ends.
// Values do not cross the join; the backend sees deadlines and
// cancellation only. Callers must invoke the returned cancel, which also
// releases the watcher goroutine.
func joinContexts(base, req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-base.Done():
			cancel()
		case <-req.Done():
			cancel()
		case <-ctx.Done():
			// handler finished first; nothing to propagate
		}
	}()
	return ctx, cancel
}
