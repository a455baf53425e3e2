package types

// TextToAnimalRequest is the JSON body for POST /v1/text-to-animal.
type TextToAnimalRequest struct {
	// Required free text to classify, 1-500 characters after trimming.
	// example: I heard something say moo
	Text string `json:"text" example:"I heard something say moo"`
}

// TextToAnimalResponse is the JSON response for a successful classification.
type TextToAnimalResponse struct {
	// Animal the text mapped to.
	// example: cow
	Animal string `json:"animal" example:"cow"`
	// Match confidence in [0,1]. Omitted when the backend fell back to its
	// default animal; zero and absent mean the same thing.
	// example: 0.92
	Confidence float32 `json:"confidence,omitempty" example:"0.92"`
}

// ErrorResponse is the JSON error body for every 4xx/5xx.
type ErrorResponse struct {
	// Machine-readable error category.
	// example: invalid_request
	Code string `json:"code" example:"invalid_request"`
	// Human-readable detail.
	// example: text is required
	Message string `json:"message" example:"text is required"`
}

// Error codes carried by ErrorResponse.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeServiceUnavailable = "service_unavailable"
	CodeMethodNotAllowed   = "method_not_allowed"
	CodeInternalError      = "internal_error"
)

// StatusResponse is the GET /status body: backend reachability plus
// process vitals.
type StatusResponse struct {
	// Address of the word2animal backend this gateway forwards to.
	// example: localhost:50051
	BackendAddr string `json:"backend_addr" example:"localhost:50051"`
	// Whether a backend connection is currently held. False does not mean the
	// backend is down, only that the next request will dial first.
	// example: true
	BackendConnected bool `json:"backend_connected" example:"true"`
	// Total dial attempts since start.
	// example: 3
	BackendDials int64 `json:"backend_dials_total" example:"3"`
	// Dial attempts that failed.
	// example: 1
	BackendDialFailures int64 `json:"backend_dial_failures_total" example:"1"`
	// Uptime of the gateway process in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Wall clock at response time, unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Gateway build version.
	// example: 1.0.0
	Version string `json:"version,omitempty" example:"1.0.0"`
}
