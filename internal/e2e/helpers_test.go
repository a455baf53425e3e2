package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"brainball/api/internal/backend"
	"brainball/api/internal/httpapi"
	"brainball/api/internal/simulator"
	"brainball/api/pkg/types"
)

// startSim boots a word2animal simulator on a loopback port. Tests that need
// a dead backend call Stop themselves; cleanup handles the rest.
func startSim(t *testing.T) *simulator.Server {
	t.Helper()
	srv := simulator.NewServer(simulator.NewService(nil, zerolog.Nop()))
	if err := srv.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("start simulator: %v", err)
	}
	t.Cleanup(srv.Stop)
	return srv
}

// newGateway wires a fresh backend client to addr and serves the full HTTP
// stack on a test listener.
func newGateway(t *testing.T, addr string) *httptest.Server {
	t.Helper()
	client := backend.New(addr)
	t.Cleanup(func() { _ = client.Close() })
	srv := httptest.NewServer(httpapi.NewMux(client))
	t.Cleanup(srv.Close)
	return srv
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func postText(t *testing.T, srv *httptest.Server, text string) (*http.Response, []byte) {
	t.Helper()
	payload, err := json.Marshal(types.TextToAnimalRequest{Text: text})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return httpPostJSON(t, srv.URL+"/v1/text-to-animal", payload)
}

func decodeAnimal(t *testing.T, body []byte) types.TextToAnimalResponse {
	t.Helper()
	var out types.TextToAnimalResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("response not JSON: %v (%s)", err, body)
	}
	return out
}

func decodeErr(t *testing.T, body []byte) types.ErrorResponse {
	t.Helper()
	var out types.ErrorResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("error body not JSON: %v (%s)", err, body)
	}
	return out
}
