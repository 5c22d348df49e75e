package middleware

import (
	"net/http"
	"strings"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextToken  = "token"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func resolveToken(c *gin.Context, jwtSecret string, blacklist *services.TokenBlacklist) (*services.Claims, string, bool) {
	token := bearerToken(c)
	if token == "" {
		return nil, "", false
	}
	if blacklist.Contains(c.Request.Context(), token) {
		return nil, "", false
	}
	claims, err := services.ParseToken(jwtSecret, token)
	if err != nil {
		return nil, "", false
	}
	return claims, token, true
}

func setIdentity(c *gin.Context, claims *services.Claims, token string) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextToken, token)
}

// RequireAuth rejects requests without a valid, unrevoked bearer token.
func RequireAuth(jwtSecret string, blacklist *services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, token, ok := resolveToken(c, jwtSecret, blacklist)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing or invalid token"})
			return
		}
		setIdentity(c, claims, token)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets the request through either way. Handlers behind it decide what an
// anonymous caller may do.
func OptionalAuth(jwtSecret string, blacklist *services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, token, ok := resolveToken(c, jwtSecret, blacklist); ok {
			setIdentity(c, claims, token)
		}
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the allowed
// set. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
	}
}
