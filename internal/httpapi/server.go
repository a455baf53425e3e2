// Package httpapi is the gateway's HTTP surface: the inference endpoint,
// health/readiness probes, diagnostics, and the middleware stack around
// them. It translates backend outcomes into the JSON error envelope; gRPC
// details never cross this boundary.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brainball/api/internal/backend"
	"brainball/api/internal/events"
	"brainball/api/pkg/types"
)

// maxTextLength bounds the text field of an inference request, counted in
// bytes after trimming. Matches the bound the backend was sized for.
const maxTextLength = 500

// Service defines the methods the HTTP API layer requires.
type Service interface {
	// GetAnimal performs one inference call bounded by ctx.
	GetAnimal(ctx context.Context, text string) backend.Result
	// Ready reports whether the backend is reachable right now.
	Ready(ctx context.Context) error
	// Stats describes the backend connection for diagnostics.
	Stats() backend.Stats
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(Recover)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, types.CodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", handleHealth)
	r.Get("/ready", handleReady(svc))
	r.Post("/v1/text-to-animal", handleTextToAnimal(svc))
	r.Get("/status", handleStatus(svc))

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

// handleHealth reports gateway liveness.
//
// @Summary      Liveness check
// @Description  Always returns 200 while the gateway process is running, regardless of backend state.
// @Tags         probes
// @Produce      plain
// @Success      200 {string} string "ok"
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleReady answers readiness by probing the backend on demand.
//
// @Summary      Readiness check
// @Description  Dials a short-lived probe connection to the word2animal backend.
// @Tags         probes
// @Produce      plain
// @Success      200 {string} string "ok"
// @Failure      503 {string} string "not ready"
// @Router       /ready [get]
func handleReady(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := callContext(r)
		defer cancel()
		if err := svc.Ready(ctx); err != nil {
			zlog.Debug().Err(err).Msg("readiness probe failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

// handleTextToAnimal turns one inference request into exactly one response.
//
// @Summary      Classify text as an animal
// @Description  Forwards the text to the word2animal backend and returns its answer.
// @Tags         inference
// @Accept       json
// @Produce      json
// @Param        request body types.TextToAnimalRequest true "text to classify"
// @Success      200 {object} types.TextToAnimalResponse
// @Failure      400 {object} types.ErrorResponse "invalid_request"
// @Failure      503 {object} types.ErrorResponse "service_unavailable"
// @Router       /v1/text-to-animal [post]
func handleTextToAnimal(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeError(w, http.StatusBadRequest, types.CodeInvalidRequest, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.TextToAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Oversized bodies land here too; keep the message uniform.
			writeError(w, http.StatusBadRequest, types.CodeInvalidRequest, "invalid JSON")
			return
		}
		text := strings.TrimSpace(req.Text)
		if text == "" {
			writeError(w, http.StatusBadRequest, types.CodeInvalidRequest, "text is required")
			return
		}
		if len(text) > maxTextLength {
			writeError(w, http.StatusBadRequest, types.CodeInvalidRequest, "text too long")
			return
		}

		ctx, cancel := callContext(r)
		defer cancel()
		start := time.Now()
		res := svc.GetAnimal(ctx, text)
		publishOutcome(r, res, time.Since(start))

		switch res.Outcome {
		case backend.OutcomeOK:
			zlog.Debug().
				Str("request_id", RequestID(r.Context())).
				Str("animal", res.Animal).
				Float32("confidence", res.Confidence).
				Msg("inference ok")
			writeJSON(w, http.StatusOK, types.TextToAnimalResponse{Animal: res.Animal, Confidence: res.Confidence})
		case backend.OutcomeInvalidArgument:
			writeError(w, http.StatusBadRequest, types.CodeInvalidRequest, "invalid text")
		case backend.OutcomeUnavailable, backend.OutcomeDeadlineExceeded:
			writeError(w, http.StatusServiceUnavailable, types.CodeServiceUnavailable, "word2animal unavailable")
		default:
			// The outcome enum is closed; reaching this is a bug.
			writeError(w, http.StatusInternalServerError, types.CodeInternalError, "internal error")
		}
	}
}

// handleStatus reports gateway diagnostics.
//
// @Summary      Gateway status
// @Description  Uptime plus backend address and connection counters.
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} types.StatusResponse
// @Router       /status [get]
func handleStatus(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := svc.Stats()
		now := time.Now()
		writeJSON(w, http.StatusOK, types.StatusResponse{
			BackendAddr:         st.Addr,
			BackendConnected:    st.Connected,
			BackendDials:        st.Dials,
			BackendDialFailures: st.DialFailures,
			UptimeSeconds:       int64(now.Sub(startTime).Seconds()),
			ServerTimeUnix:      now.Unix(),
			Version:             version,
		})
	}
}

// callContext bounds one backend call: whatever is left of the per-request
// budget, measured from middleware entry, joined with the server base
// context so shutdown cancels in-flight calls.
func callContext(r *http.Request) (context.Context, context.CancelFunc) {
	joined, cancelJoin := joinContexts(serverBaseCtx, r.Context())
	start := StartTime(r.Context())
	if start.IsZero() {
		start = time.Now()
	}
	remaining := requestDeadline - time.Since(start)
	ctx, cancelTimeout := context.WithTimeout(joined, remaining)
	return ctx, func() {
		cancelTimeout()
		cancelJoin()
	}
}

// publishOutcome emits one event per inference call. Best-effort: the
// publisher contract guarantees this cannot block or panic.
func publishOutcome(r *http.Request, res backend.Result, dur time.Duration) {
	fields := map[string]any{
		"request_id":  RequestID(r.Context()),
		"outcome":     res.Outcome.String(),
		"duration_ms": dur.Milliseconds(),
	}
	if res.Outcome == backend.OutcomeOK {
		fields["animal"] = res.Animal
	}
	publisher.Publish(events.New("inference", fields))
}
