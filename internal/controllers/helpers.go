package controllers

import (
	"errors"
	"net/http"

	"minilink/internal/apperrors"
	"minilink/internal/entities"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateCode), errors.Is(err, apperrors.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidURL):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrGenerationExhausted):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUser returns the authenticated user's ID and admin flag from the
// context set by the auth middleware
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	role := c.GetString("user_role")
	return userID, role == entities.RoleAdmin
}

// scopeOwner returns the ownership scope for link operations: admins get
// the unscoped (nil) path, everyone else is scoped to their own links
func scopeOwner(c *gin.Context) *string {
	userID, isAdmin := currentUser(c)
	if isAdmin {
		return nil
	}
	return &userID
}
