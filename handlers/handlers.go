package handlers

import (
	"errors"
	"log"
	"net/http"

	"dailyquiz/middleware"
	"dailyquiz/models"
	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

// serviceError translates a service failure into the matching HTTP response.
// Unexpected errors come back as a generic 500; detail stays in the log.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
	case errors.Is(err, services.ErrRoleMismatch):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Role mismatch"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Username already exists"})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}

// authorizeWrite guards the user/question mutation endpoints: the caller must
// be an admin unless open-write mode is enabled. Distinguishes the anonymous
// caller (401) from an authenticated non-admin (403).
func authorizeWrite(c *gin.Context, allowOpenWrite bool) bool {
	if allowOpenWrite {
		return true
	}
	role, exists := c.Get(middleware.ContextRole)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return false
	}
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
		return false
	}
	return true
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
