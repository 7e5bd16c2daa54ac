package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/pkg/response"
)

// writeError maps application sentinel errors onto HTTP statuses so
// every handler reports failures the same way.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrInvalidTransition):
		status = http.StatusConflict
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
