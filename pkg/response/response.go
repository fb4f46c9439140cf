package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-course-marketplace/internal/domain/apperr"
)

// ErrorBody is the JSON shape of every failure response.
type ErrorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes body with status, defaulting to 200.
func JSON(c *gin.Context, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, body)
}

// Error aborts the request with {message, error?}.
func Error(c *gin.Context, status int, message string, cause string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, ErrorBody{Message: message, Error: cause})
}

// ValidationError aborts with 400 and field-level detail.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Message: "Validation error", Errors: fields})
}

// FromError maps an application error onto the response. fallback is the
// message reported for server-side failures, with the cause in "error".
func FromError(c *gin.Context, err error, fallback string) {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind == apperr.KindValidation {
		ValidationError(c, ae.Fields)
		return
	}
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		Error(c, status, fallback, apperr.Detail(err))
		return
	}
	Error(c, status, apperr.Detail(err), "")
}
