package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/salesflow-backend/internal/platform/envutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/realtime/bus"
	"github.com/yungbote/salesflow-backend/internal/services"
)

const developmentEnv = "development"

type Config struct {
	Port        string
	LogMode     string
	Environment string
	Version     string

	JWTSecretKey string
	AdminRole    string

	AllowedOrigins []string

	EvidenceEnabled      bool
	EvidenceQueryTimeout time.Duration
	DBAutoMigrate        bool

	Redis bus.RedisConfig

	MetricsEnabled bool
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		Environment: envutil.String("APP_ENV", developmentEnv),
		Version:     envutil.String("APP_VERSION", "dev"),

		JWTSecretKey: envutil.String("JWT_SECRET_KEY", services.DevJWTSecret),
		AdminRole:    envutil.String("ADMIN_ROLE", "admin"),

		AllowedOrigins: splitList(envutil.String("CORS_ALLOWED_ORIGINS", "")),

		EvidenceEnabled:      envutil.Bool("EVIDENCE_ENABLED", true),
		EvidenceQueryTimeout: envutil.Duration("EVIDENCE_QUERY_TIMEOUT", 3*time.Second),
		DBAutoMigrate:        envutil.Bool("DB_AUTOMIGRATE", false),

		Redis: bus.RedisConfig{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
			Channel:  envutil.String("REDIS_CHANNEL", ""),
		},

		MetricsEnabled: envutil.Bool("METRICS_ENABLED", false),
	}
	if log != nil && cfg.JWTSecretKey == services.DevJWTSecret {
		log.Warn("JWT_SECRET_KEY not set; using the development default")
	}
	return cfg
}

// Validate rejects settings that are only safe on a developer machine.
func (c Config) Validate() error {
	if c.Environment != developmentEnv && c.JWTSecretKey == services.DevJWTSecret {
		return fmt.Errorf("JWT_SECRET_KEY must be set when APP_ENV=%q", c.Environment)
	}
	return nil
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
