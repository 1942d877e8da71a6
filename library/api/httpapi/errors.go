package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/shared/core"
)

const (
	errorKindBadRequest = "BadRequest"
	errorKindInternal   = "Internal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps an error kind to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrConflict),
		errors.Is(err, core.ErrInvalidState),
		errors.Is(err, core.ErrUnavailable):
		return http.StatusConflict
	case errors.Is(err, core.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := core.ErrorKindName(err)
	if kind == "" {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   errorKindInternal,
			Message: http.StatusText(http.StatusInternalServerError),
		})

		return
	}

	c.AbortWithStatusJSON(StatusFor(err), ErrorResponse{Error: kind, Message: err.Error()})
}

func abortWithBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: errorKindBadRequest, Message: err.Error()})
}
