package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/salesflow-backend/internal/platform/ctxutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

// DevJWTSecret is the signing key used when JWT_SECRET_KEY is unset. Only accepted in development.
const DevJWTSecret = "defaultsecret"

var (
	ErrMissingToken = errors.New("Authentication required")
	ErrInvalidToken = errors.New("Authentication required")
	ErrNotAdmin     = errors.New("Admin access required")
)

type AuthService interface {
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	RequireAdmin(ctx context.Context) error
	IssueToken(userID, email, role string, ttl time.Duration) (string, error)
}

// Claims are the JWT claims this service trusts. The subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type authService struct {
	log          *logger.Logger
	jwtSecretKey string
	adminRole    string
}

func NewAuthService(log *logger.Logger, jwtSecretKey, adminRole string) AuthService {
	serviceLog := log.With("service", "AuthService")
	if strings.TrimSpace(adminRole) == "" {
		adminRole = "admin"
	}
	return &authService{
		log:          serviceLog,
		jwtSecretKey: jwtSecretKey,
		adminRole:    adminRole,
	}
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if strings.TrimSpace(tokenString) == "" {
		return ctx, ErrMissingToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		as.log.Debug("rejected token", "error", err)
		return ctx, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ctx, ErrInvalidToken
	}
	rd := &ctxutil.RequestData{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

// RequireAdmin checks the identity already attached to ctx.
func (as *authService) RequireAdmin(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == "" {
		return ErrMissingToken
	}
	if !strings.EqualFold(rd.Role, as.adminRole) {
		return ErrNotAdmin
	}
	return nil
}

func (as *authService) IssueToken(userID, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
}
