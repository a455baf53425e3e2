package httpapi

import (
	"time"

	"brainball/api/internal/events"
)

// maxBodyBytes caps the request body read on JSON endpoints, 1 MiB unless
// overridden. Oversized bodies turn into a 400 before any decode work.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes overrides the body cap (0 or less restores the default).
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// requestDeadline is the end-to-end budget for one inference request,
// including any reconnect the backend client performs.
var requestDeadline = 2 * time.Second

// SetRequestDeadline configures the per-request budget (0 or less restores
// the default).
func SetRequestDeadline(d time.Duration) {
	if d <= 0 {
		requestDeadline = 2 * time.Second
		return
	}
	requestDeadline = d
}

// CORS is off until SetCORSOptions enables it; NewMux then mounts the
// middleware with these values.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions enables or disables CORS. The slices are copied, so the
// caller may reuse its arguments.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// publisher receives one event per inference request. Defaults to dropping
// them.
var publisher events.Publisher = events.Noop{}

// SetPublisher installs the event publisher used by the inference handler.
func SetPublisher(p events.Publisher) {
	if p == nil {
		publisher = events.Noop{}
		return
	}
	publisher = p
}

// startTime anchors the uptime reported by /status.
var startTime = time.Now()

// version is reported by /status; empty until the binary sets it.
var version string

// SetVersion sets the build version reported by /status.
func SetVersion(v string) { version = v }
