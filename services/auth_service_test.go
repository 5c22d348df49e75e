package services

import (
	"testing"
	"time"

	"dailyquiz/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")
	token, err := svc.GenerateToken(&models.User{ID: 7, Role: models.RoleStudent})
	assert.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")
	token, err := svc.GenerateToken(&models.User{ID: 7, Role: models.RoleAdmin})
	assert.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := Claims{
		UserID: 7,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ParseToken("test-secret", raw)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("test-secret", "not.a.token")
	assert.Error(t, err)
}
