package handlers

import (
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userService    *services.UserService
	allowOpenWrite bool
}

func NewAdminHandler(userService *services.UserService, allowOpenWrite bool) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		allowOpenWrite: allowOpenWrite,
	}
}

// UpsertUser creates an account or updates the one with the same username.
func (h *AdminHandler) UpsertUser(c *gin.Context) {
	if !authorizeWrite(c, h.allowOpenWrite) {
		return
	}

	var req services.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	user, err := h.userService.Upsert(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	if !authorizeWrite(c, h.allowOpenWrite) {
		return
	}

	users, err := h.userService.List(c.Query("role"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
