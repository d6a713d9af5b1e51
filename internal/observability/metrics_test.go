package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.IncStepGenerated("close", "")
	m.IncStepGenerated("close", "")
	m.IncStepGenerated("pricing", "price_objection")
	if got := testutil.ToFloat64(m.stepsGenerated.WithLabelValues("close", "none")); got != 2 {
		t.Fatalf("close steps: got=%v", got)
	}
	if got := testutil.ToFloat64(m.stepsGenerated.WithLabelValues("pricing", "price_objection")); got != 1 {
		t.Fatalf("pricing steps: got=%v", got)
	}

	m.ObserveEvidenceLookup(true, 10*time.Millisecond)
	m.ObserveEvidenceLookup(false, time.Millisecond)
	if got := testutil.ToFloat64(m.evidenceLookups.WithLabelValues("found")); got != 1 {
		t.Fatalf("found lookups: got=%v", got)
	}

	m.IncEventPublished(false)
	if got := testutil.ToFloat64(m.eventsPublished.WithLabelValues("error")); got != 1 {
		t.Fatalf("failed events: got=%v", got)
	}
}

func TestMetricsHandlerExposesSeries(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveAPI("POST", "/api/admin/sales/generate-step", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `salesflow_api_requests_total{method="POST",route="/api/admin/sales/generate-step",status="200"} 1`) {
		t.Fatalf("missing api series in:\n%s", rec.Body.String())
	}
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.IncStepGenerated("opening", "")
	m.ObserveEvidenceLookup(false, 0)
	m.IncEventPublished(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("nil metrics handler should 404, got %d", rec.Code)
	}
}
