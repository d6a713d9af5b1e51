package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/salesflow-backend/internal/http/handlers"
	httpMW "github.com/yungbote/salesflow-backend/internal/http/middleware"
	"github.com/yungbote/salesflow-backend/internal/observability"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	Metrics        *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware
	SalesHandler   *httpH.SalesHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORSWithOrigins(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	admin := r.Group("/api/admin")
	{
		if cfg.AuthMiddleware != nil {
			admin.Use(cfg.AuthMiddleware.RequireAdmin())
		}

		// Sales script
		if cfg.SalesHandler != nil {
			admin.POST("/sales/generate-step", cfg.SalesHandler.GenerateStep)
			admin.GET("/sales/strategies", cfg.SalesHandler.ListStrategies)
			admin.GET("/sales/vocabulary", cfg.SalesHandler.Vocabulary)
			admin.POST("/sales/grand-slam-offer", cfg.SalesHandler.GrandSlamOffer)
			admin.POST("/sales/objection-handlers", cfg.SalesHandler.ObjectionHandlers)
		}
	}

	return r
}
