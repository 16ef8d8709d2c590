package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Post("/skills/extract", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"skills":[]}`))
	})
	r.Get("/analyses/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Post("/analyze", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.WriteHeader(http.StatusOK) // ignored: first status wins
	})
	return r
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := newTestRouter()

	for _, id := range []string{"a-1", "b-2", "c-3"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyses/"+id, http.NoBody))
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/analyses/{id}", "404"))
	if got < 3 {
		t.Errorf("expected >= 3 requests on /analyses/{id}, got %f", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected duration observations")
	}
}

func TestMiddleware_FirstStatusWins(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{}")))

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/analyze", "413"))
	if got < 1 {
		t.Errorf("expected 413 to be recorded, got %f", got)
	}
}

func TestMiddleware_ImplicitOKAndRequestSize(t *testing.T) {
	r := newTestRouter()

	body := `{"text":"python and docker"}`
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/skills/extract", strings.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/skills/extract", "200")); got < 1 {
		t.Errorf("expected 200 to be recorded, got %f", got)
	}
	if testutil.CollectAndCount(httpRequestSize) == 0 {
		t.Error("expected request size observation")
	}
	if got := testutil.ToFloat64(httpInFlight); got != 0 {
		t.Errorf("in-flight gauge = %f after request, want 0", got)
	}
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/no/such/path/123", http.NoBody))

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))
	if got < 1 {
		t.Errorf("expected unmatched 404 to be recorded, got %f", got)
	}
}

func TestRouteLabel_OutsideRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	if got := routeLabel(req); got != unmatchedRoute {
		t.Errorf("routeLabel = %q, want %q", got, unmatchedRoute)
	}
}
