package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/salesflow-backend/internal/http"
	httpH "github.com/yungbote/salesflow-backend/internal/http/handlers"
	httpMW "github.com/yungbote/salesflow-backend/internal/http/middleware"
	"github.com/yungbote/salesflow-backend/internal/observability"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health *httpH.HealthHandler
	Sales  *httpH.SalesHandler
}

func wireHandlers(log *logger.Logger, services Services, clients Clients) Handlers {
	log.Info("Wiring handlers...")
	health := httpH.NewHealthHandler()
	if clients.Postgres != nil {
		health = httpH.NewHealthHandlerWithDB(clients.Postgres)
	}
	return Handlers{
		Health: health,
		Sales: httpH.NewSalesHandlerWithDeps(httpH.SalesHandlerDeps{
			Log:   log,
			Sales: services.SalesScript,
		}),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:            log,
		ServiceName:    serviceName,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metrics,
		AuthMiddleware: middleware.Auth,
		SalesHandler:   handlers.Sales,
		HealthHandler:  handlers.Health,
	})
}
