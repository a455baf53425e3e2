package backend

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Outcome classifies one GetAnimal call. The set is closed: every call ends
// in exactly one of these four states, so callers can map outcomes to HTTP
// statuses exhaustively.
type Outcome int

const (
	// OutcomeOK means the backend answered; Animal and Confidence are valid.
	OutcomeOK Outcome = iota
	// OutcomeInvalidArgument means the backend rejected the input. A caller
	// problem, not a connectivity one; the connection stays valid.
	OutcomeInvalidArgument
	// OutcomeUnavailable means the backend was unreachable or the connection
	// broke mid-call. The held connection has been discarded.
	OutcomeUnavailable
	// OutcomeDeadlineExceeded means the call did not finish within the
	// request budget. Connection validity is indeterminate, so it has been
	// discarded as well.
	OutcomeDeadlineExceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInvalidArgument:
		return "invalid_argument"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeDeadlineExceeded:
		return "deadline_exceeded"
	default:
		return "unknown"
	}
}

// Result is the translated outcome of one inference call. Animal and
// Confidence are meaningful only for OutcomeOK; Err only for the failure
// outcomes.
type Result struct {
	Outcome    Outcome
	Animal     string
	Confidence float32
	Err        error
}

// classify maps a failed dial or RPC to a failure Result. InvalidArgument
// and DeadlineExceeded are recognized from the gRPC status; everything else
// (Unavailable, transport errors, unexpected codes) collapses into
// OutcomeUnavailable, since the caller cannot treat them differently.
func classify(err error) Result {
	if errors.Is(err, context.DeadlineExceeded) {
		return Result{Outcome: OutcomeDeadlineExceeded, Err: err}
	}
	switch status.Code(err) {
	case codes.InvalidArgument:
		return Result{Outcome: OutcomeInvalidArgument, Err: err}
	case codes.DeadlineExceeded:
		return Result{Outcome: OutcomeDeadlineExceeded, Err: err}
	default:
		return Result{Outcome: OutcomeUnavailable, Err: err}
	}
}
