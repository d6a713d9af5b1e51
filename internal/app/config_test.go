package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_SECRET_KEY", "ADMIN_ROLE", "EVIDENCE_QUERY_TIMEOUT", "REDIS_ADDR", "CORS_ALLOWED_ORIGINS", "EVIDENCE_ENABLED"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(logger.Nop())

	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
	if cfg.AdminRole != "admin" {
		t.Fatalf("unexpected admin role: %q", cfg.AdminRole)
	}
	if cfg.EvidenceQueryTimeout != 3*time.Second {
		t.Fatalf("unexpected evidence timeout: %v", cfg.EvidenceQueryTimeout)
	}
	if !cfg.EvidenceEnabled {
		t.Fatalf("evidence should default on")
	}
	if cfg.Redis.Addr != "" || len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("unexpected optional settings: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("EVIDENCE_QUERY_TIMEOUT", "750")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig(logger.Nop())
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
	if cfg.EvidenceQueryTimeout != 750*time.Millisecond {
		t.Fatalf("unexpected evidence timeout: %v", cfg.EvidenceQueryTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestConfigValidateJWTSecret(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"development default", Config{Environment: "development", JWTSecretKey: services.DevJWTSecret}, false},
		{"production default", Config{Environment: "production", JWTSecretKey: services.DevJWTSecret}, true},
		{"production explicit", Config{Environment: "production", JWTSecretKey: "s3cret"}, false},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: err=%v wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}

func TestNewRefusesDefaultSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("OTEL_ENABLED", "false")

	if a, err := New(); err == nil {
		a.Close()
		t.Fatalf("expected New to fail with the default JWT secret in production")
	}
}

func TestWiringWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	cfg := Config{JWTSecretKey: "s", AdminRole: "admin", EvidenceEnabled: false}

	clients, err := wireClients(log, cfg)
	if err != nil {
		t.Fatalf("wire clients: %v", err)
	}
	defer clients.Close()

	reposet := wireRepos(nil, log)
	if reposet.PainPointEvidence != nil {
		t.Fatalf("expected no repos without a database")
	}
	svcs := wireServices(log, cfg, reposet, clients, nil)
	router := wireRouter(log, cfg, wireHandlers(log, svcs, clients), wireMiddleware(log, svcs), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("readyz: %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/sales/vocabulary", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("vocabulary without token: %d", rec.Code)
	}
}
