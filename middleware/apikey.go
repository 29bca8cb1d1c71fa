package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// apiKeyActor is recorded on management writes when the request carries
// only the API key and no cashier token.
const apiKeyActor = "admin"

// ValidateAPIKey guards the back-office management surface. Management
// writes record who performed them, so when the request also carries a
// cashier JWT its claims are put on the context; otherwise the actor is
// the key holder itself.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey != os.Getenv("POS_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}

	c.Set("cashier_name", apiKeyActor)
	if tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "); tokenString != "" {
		if claims, err := parseCashierClaims(tokenString); err == nil {
			c.Set("cashier_id", claims["cashier_id"])
			c.Set("cashier_name", claims["cashier_name"])
		}
	}

	c.Next()
}
