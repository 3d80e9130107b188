package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamados/internal/shared/errors"
)

// APIResponse is the wire envelope every endpoint answers with:
// {ok:true, data?} on success, {ok:false, error} on failure.
type APIResponse struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		OK:   true,
		Data: data,
	})
}

// OKResponse sends a bare {ok:true} with no data payload.
func OKResponse(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{OK: true})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		OK:   true,
		Data: data,
	})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		OK:    false,
		Error: message,
	})
}

// ForbiddenResponse sends the uniform access-denied response. Role
// failures and ownership failures are indistinguishable on the wire.
func ForbiddenResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "access denied")
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}

	// Non-AppError failures come from the backing store or a bug.
	// Never expose internal error text to the client.
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
