package handlers

import (
	"net/http"

	"dailyquiz/middleware"
	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	blacklist   *services.TokenBlacklist
	jwtSecret   string
}

func NewAuthHandler(authService *services.AuthService, blacklist *services.TokenBlacklist, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		blacklist:   blacklist,
		jwtSecret:   jwtSecret,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing credentials"})
		return
	}

	token, user, err := h.authService.Login(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	className := ""
	if user.Class != nil {
		className = user.Class.Name
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
			"fullName": user.FullName,
			"class":    className,
		},
	})
}

// Logout revokes the presented token when one is attached. Always answers
// 200 so clients can clean up regardless of token state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := c.GetString(middleware.ContextToken); token != "" {
		if claims, err := services.ParseToken(h.jwtSecret, token); err == nil && claims.ExpiresAt != nil {
			_ = h.blacklist.Add(c.Request.Context(), token, claims.ExpiresAt.Time)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
