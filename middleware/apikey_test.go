package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/discounts", nil)
	return c
}

func TestValidateAPIKeyRejectsWrongKey(t *testing.T) {
	t.Setenv("POS_API_KEY", "secret-key")

	c := adminContext(t)
	c.Request.Header.Set("X-API-KEY", "wrong")

	ValidateAPIKey(c)

	assert.True(t, c.IsAborted())
}

func TestValidateAPIKeySetsFallbackActor(t *testing.T) {
	t.Setenv("POS_API_KEY", "secret-key")

	c := adminContext(t)
	c.Request.Header.Set("X-API-KEY", "secret-key")

	ValidateAPIKey(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "admin", c.GetString("cashier_name"))
}

func TestValidateAPIKeyPrefersCashierClaims(t *testing.T) {
	t.Setenv("POS_API_KEY", "secret-key")
	t.Setenv("JWT_SECRET", "jwt-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"cashier_id":   "c-1",
		"cashier_name": "Maya",
		"exp":          time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("jwt-secret"))
	require.NoError(t, err)

	c := adminContext(t)
	c.Request.Header.Set("X-API-KEY", "secret-key")
	c.Request.Header.Set("Authorization", "Bearer "+signed)

	ValidateAPIKey(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "c-1", c.GetString("cashier_id"))
	assert.Equal(t, "Maya", c.GetString("cashier_name"))
}

func TestValidateAPIKeyIgnoresBadToken(t *testing.T) {
	t.Setenv("POS_API_KEY", "secret-key")
	t.Setenv("JWT_SECRET", "jwt-secret")

	c := adminContext(t)
	c.Request.Header.Set("X-API-KEY", "secret-key")
	c.Request.Header.Set("Authorization", "Bearer not-a-token")

	ValidateAPIKey(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "admin", c.GetString("cashier_name"))
}
