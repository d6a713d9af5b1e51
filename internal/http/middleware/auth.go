package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/salesflow-backend/internal/http/response"
	"github.com/yungbote/salesflow-backend/internal/platform/apierr"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

// RequireAdmin rejects the request before any handler runs unless the bearer token
// belongs to an admin.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), extractBearerToken(c))
		if err == nil {
			err = am.authService.RequireAdmin(ctx)
		}
		if err != nil {
			ae := classifyAuthError(err)
			am.log.Debug("admin check failed", "status", ae.Status, "path", c.Request.URL.Path)
			response.AbortMessage(c, ae.Status, ae.Error())
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func classifyAuthError(err error) *apierr.Error {
	if errors.Is(err, services.ErrNotAdmin) {
		return apierr.Forbidden("forbidden", err)
	}
	if errors.Is(err, services.ErrMissingToken) || errors.Is(err, services.ErrInvalidToken) {
		return apierr.Unauthorized("unauthorized", err)
	}
	return apierr.New(http.StatusUnauthorized, "unauthorized", services.ErrInvalidToken)
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
