package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/panchang-api/pkg/errors"
)

// statusFor maps the domain error taxonomy to HTTP statuses. Unknown codes
// are internal failures and never leak their detail to clients.
func statusFor(code string) int {
	switch code {
	case apperrors.CodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.CodeDomain:
		return http.StatusUnprocessableEntity
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError records the error for the error-handling middleware to
// serialize after the handler chain unwinds.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
