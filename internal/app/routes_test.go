// internal/app/routes_test.go

package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	apppkg "mcp-weather/internal/app"
)

// Pastikan /admin/* diproteksi (tanpa auth tidak boleh 200)
func TestAdminRoutesProtected(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	// tanpa kredensial
	req := httptest.NewRequest(http.MethodGet, "/admin/audit", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		t.Fatalf("expected non-200 for protected admin route, got 200")
	}
}

// Sanity check: public endpoints tetap 200
func TestPublicRoutesHealthy(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on /healthz, got %d", rec.Code)
	}
}

func TestMetricsExposesToolCounters(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on /metrics, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "app_up 1") {
		t.Fatalf("missing app_up gauge:\n%s", body)
	}
	if !strings.Contains(body, `mcp_tool_calls_total{tool="get_alerts"}`) ||
		!strings.Contains(body, `mcp_tool_calls_total{tool="get_forecast"}`) {
		t.Fatalf("missing tool counters:\n%s", body)
	}
}
