// Package response is the JSON envelope the task endpoints speak. Success
// payloads go out as-is ({"tasks": [...]}, {"challenge": {...}}, {"task":
// ...}); failures are wrapped so clients can branch on a stable code
// (not_found, invalid_transition, ...) without parsing the message.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
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

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondNoContent acknowledges side-effect-only calls, like the explicit
// materialization trigger.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
