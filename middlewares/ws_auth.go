package middlewares

import (
	"net/http"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware authenticates WebSocket upgrades. Browser WebSocket
// clients cannot set headers, so the token travels as a query parameter.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)

		c.Next()
	}
}
