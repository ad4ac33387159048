//go:build unit

package api_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testToken = "bearer-token"

// fakeAuth stands in for the JWT middleware and authenticates every request
// carrying a bearer token as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_email", "red@example.com")
		c.Next()
	}
}
