package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/salesflow-backend/internal/platform/ctxutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

func newAdminRouter(t *testing.T, auth services.AuthService) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.Use(NewAuthMiddleware(logger.Nop(), auth).RequireAdmin())
	r.POST("/api/admin/sales/generate-step", func(c *gin.Context) {
		reached = true
		rd := ctxutil.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user": rd.UserID})
	})
	return r, &reached
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()
	auth := services.NewAuthService(logger.Nop(), "test-secret", "admin")
	admin, err := auth.IssueToken("u-1", "a@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	member, err := auth.IssueToken("u-2", "m@example.com", "member", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	foreign, err := services.NewAuthService(logger.Nop(), "other-secret", "").IssueToken("u-3", "", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	cases := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized, message: "Authentication required"},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized, message: "Authentication required"},
		{name: "bad signature", header: "Bearer " + foreign, status: http.StatusUnauthorized, message: "Authentication required"},
		{name: "not admin", header: "Bearer " + member, status: http.StatusForbidden, message: "Admin access required"},
		{name: "admin", header: "Bearer " + admin, status: http.StatusOK},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, reached := newAdminRouter(t, auth)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/sales/generate-step", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.status)
			}
			if tc.status != http.StatusOK {
				if *reached {
					t.Fatalf("handler ran for rejected request")
				}
				var body struct {
					Error string `json:"error"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body.Error != tc.message {
					t.Fatalf("unexpected message: got=%q want=%q", body.Error, tc.message)
				}
				return
			}
			if !*reached {
				t.Fatalf("handler did not run")
			}
		})
	}
}
