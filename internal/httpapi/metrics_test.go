package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsMiddleware_EmitsRequestCounters(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/ping/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/42", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }

	mw := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := mw.Body.String()
	if !strings.Contains(body, "gateway_http_requests_total") {
		t.Fatalf("request counter not exported")
	}
	// Labelled by route pattern, not the concrete URL, to keep cardinality low.
	if !strings.Contains(body, `path="/ping/{id}"`) {
		t.Fatalf("expected route-pattern label in metrics output")
	}
}

func TestStatusRecorder_DefaultsTo200(t *testing.T) {
	w := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	if _, err := sr.Write([]byte("hi")); err != nil { t.Fatalf("write: %v", err) }
	if sr.status != http.StatusOK { t.Fatalf("status=%d", sr.status) }

	sr = &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	sr.WriteHeader(http.StatusTeapot)
	if sr.status != http.StatusTeapot { t.Fatalf("status=%d", sr.status) }
}

func TestRoutePatternOrPath_NoChiContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	if got := routePatternOrPath(req); got != "/plain" {
		t.Fatalf("got %q", got)
	}
}

func TestItoa(t *testing.T) {
	for _, c := range []struct {
		n    int
		want string
	}{{0, "0"}, {200, "200"}, {404, "404"}, {1000, "1000"}} {
		if got := itoa(c.n); got != c.want {
			t.Fatalf("itoa(%d)=%q, want %q", c.n, got, c.want)
		}
	}
}
