// Package simulator is a deterministic stand-in for the word2animal
// inference service. It answers GetAnimal by keyword lookup instead of a
// model, so the gateway can be developed and tested before the real backend
// exists. Same wire contract, same animal set, no model load time.
package simulator

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"brainball/api/pkg/w2apb"
)

// Infer maps text to (animal, confidence). The text is lower-cased and split
// on non-alphanumeric runes; animals are scanned in table order and the
// first animal with a matching token wins. Confidence is 1.0 when the match
// is the animal's primary name, 0.9 for an alias. No match returns "bird"
// with confidence 0, mirroring the production service's fallback.
func (t Table) Infer(text string) (string, float32) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return "bird", 0
	}
	for _, e := range t {
		for _, kw := range e.Keywords {
			if !tokens[kw] {
				continue
			}
			if kw == e.Keywords[0] {
				return e.Animal, 1.0
			}
			return e.Animal, 0.9
		}
	}
	return "bird", 0
}

func tokenize(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make(map[string]bool, len(fields))
	for _, f := range fields {
		tokens[f] = true
	}
	return tokens
}

// Service implements the Word2Animal RPC over a keyword table.
type Service struct {
	table Table
	log   zerolog.Logger
	// Delay is added before every answer; tests use it to trip deadlines.
	Delay time.Duration
}

// NewService returns a Service over table, or over DefaultTable when table
// is nil.
func NewService(table Table, log zerolog.Logger) *Service {
	if table == nil {
		table = DefaultTable()
	}
	return &Service{table: table, log: log}
}

// GetAnimal answers one inference request. Empty text (after trimming) is
// rejected with InvalidArgument so clients exercise their caller-error path.
func (s *Service) GetAnimal(ctx context.Context, req *w2apb.GetAnimalRequest) (*w2apb.GetAnimalResponse, error) {
	start := time.Now()
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, status.FromContextError(ctx.Err()).Err()
		}
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, status.Error(codes.InvalidArgument, "text is empty")
	}
	animal, confidence := s.table.Infer(text)
	s.log.Info().
		Str("animal", animal).
		Float32("confidence", confidence).
		Int("text_len", len(text)).
		Dur("duration", time.Since(start)).
		Msg("GetAnimal")
	return &w2apb.GetAnimalResponse{Animal: animal, Confidence: confidence}, nil
}
