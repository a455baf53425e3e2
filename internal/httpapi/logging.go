package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the correlation id. Inbound values are honored so
// callers can stitch gateway logs into their own traces.
const RequestIDHeader = "X-Request-ID"

// zlog is the structured logger for the HTTP layer. No-op until SetLogger
// installs the process logger.
var zlog = zerolog.Nop()

// SetLogger replaces the no-op logger, normally with the process logger
// built in cmd/gateway.
func SetLogger(l zerolog.Logger) { zlog = l }

type ctxKey int

const (
	requestIDKey ctxKey = iota
	startTimeKey
)

// RequestID returns the correlation id assigned to this request, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// StartTime returns the middleware entry time for this request. Zero when
// the middleware did not run (direct handler tests).
func StartTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(startTimeKey).(time.Time); ok {
		return t
	}
	return time.Time{}
}

// RequestLogger assigns each request a correlation id and emits exactly one
// structured line when the response has been written. The emission is
// deferred, so it happens even when a handler panics. Must be the outermost
// middleware so the recorded status includes what Recover writes.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		start := time.Now()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		ctx = context.WithValue(ctx, startTimeKey, start)
		w.Header().Set(RequestIDHeader, id)

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			zlog.Info().
				Str("request_id", id).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sr.status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("request")
		}()
		next.ServeHTTP(sr, r.WithContext(ctx))
	})
}
