package httpapi

import (
	"net/http"
	"runtime/debug"

	"brainball/api/pkg/types"
)

// Recover catches handler panics, logs them with a stack trace, and answers
// with the error envelope instead of killing the connection. Internal detail
// stays in the log; the client sees only the generic message. Sits inside
// RequestLogger so the request line records the 500.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				zlog.Error().
					Str("request_id", RequestID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				writeError(w, http.StatusInternalServerError, types.CodeInternalError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
