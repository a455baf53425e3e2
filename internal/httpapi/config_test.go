package httpapi

import (
	"testing"
	"time"

	"brainball/api/internal/events"
)

func TestSetMaxBodyBytes(t *testing.T) {
	defer SetMaxBodyBytes(0)
	SetMaxBodyBytes(2048)
	if maxBodyBytes != 2048 { t.Fatalf("maxBodyBytes=%d", maxBodyBytes) }
	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 { t.Fatalf("zero should restore the default, got %d", maxBodyBytes) }
	SetMaxBodyBytes(-5)
	if maxBodyBytes != 1<<20 { t.Fatalf("negative should restore the default, got %d", maxBodyBytes) }
}

func TestSetRequestDeadline(t *testing.T) {
	defer SetRequestDeadline(0)
	SetRequestDeadline(5 * time.Second)
	if requestDeadline != 5*time.Second { t.Fatalf("requestDeadline=%v", requestDeadline) }
	SetRequestDeadline(0)
	if requestDeadline != 2*time.Second { t.Fatalf("zero should restore the default, got %v", requestDeadline) }
}

func TestSetCORSOptions_CopiesSlices(t *testing.T) {
	defer SetCORSOptions(false, nil, nil, nil)
	origins := []string{"https://a.example"}
	SetCORSOptions(true, origins, nil, nil)
	origins[0] = "mutated"
	if !corsEnabled { t.Fatalf("cors should be enabled") }
	if corsAllowedOrigins[0] != "https://a.example" {
		t.Fatalf("caller mutation leaked into config: %v", corsAllowedOrigins)
	}
}

func TestSetPublisher_NilRestoresNoop(t *testing.T) {
	SetPublisher(events.NewMemoryPublisher())
	SetPublisher(nil)
	if _, ok := publisher.(events.Noop); !ok {
		t.Fatalf("nil should restore the noop publisher, got %T", publisher)
	}
}
