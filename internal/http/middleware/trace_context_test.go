package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yungbote/salesflow-backend/internal/observability"
	"github.com/yungbote/salesflow-backend/internal/platform/ctxutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()))
	r.GET("/healthcheck", func(c *gin.Context) {
		seen = ctxutil.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen != "req-123" {
		t.Fatalf("unexpected request id in context: %q", seen)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("unexpected request id header: %q", got)
	}
	if rec.Header().Get(headerTraceID) == "" {
		t.Fatalf("missing trace id header")
	}
}

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/healthcheck", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Header().Get(headerRequestID) == "" {
		t.Fatalf("missing generated request id")
	}
}

func TestMetricsMiddlewareCountsRoutes(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/admin/sales/vocabulary", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/sales/vocabulary", nil))
	}

	n, err := testutil.GatherAndCount(reg, "salesflow_api_requests_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Fatalf("unexpected series count: %d", n)
	}
}

func TestMetricsMiddlewareNil(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/healthcheck", func(c *gin.Context) { c.Status(http.StatusOK) })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
