package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/services"
)

// respondError maps service-layer errors onto HTTP statuses. Every
// failure body is {message}, which is what the client's generic error
// alert displays.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNotAuthor),
		errors.Is(err, services.ErrDeleteLocked),
		errors.Is(err, services.ErrQuotaExceeded):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrDuplicate):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.JSON(status, gin.H{"message": message})
}
