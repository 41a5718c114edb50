package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travel-content-admin/internal/form"
	"github.com/travel-content-admin/internal/upstream"
)

// respondError maps an error from the client/form layer onto an HTTP
// response. A 401 from the backend has already invalidated the local
// session; the caller's only move is to sign in again.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, sign in again"})
		return
	}

	var ue *upstream.Error
	if errors.As(err, &ue) {
		status := ue.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": ue.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// respondSubmitError maps a form submit failure: validation failures carry
// the per-field messages with 422, everything else goes through respondError
func respondSubmitError(c *gin.Context, err error, fieldErrors map[string]string) {
	if errors.Is(err, form.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": fieldErrors,
		})
		return
	}
	respondError(c, err)
}
