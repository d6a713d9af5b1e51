package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/salesflow-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MessageEnvelope is the flat {error: string} body the sales admin routes return.
type MessageEnvelope struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes err using its apierr status and code.
func RespondAPIError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil {
		ae = apierr.New(http.StatusInternalServerError, "internal", nil)
	}
	RespondError(c, ae.Status, ae.Code, ae.Err)
}

func RespondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageEnvelope{Error: msg})
}

func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, MessageEnvelope{Error: msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
