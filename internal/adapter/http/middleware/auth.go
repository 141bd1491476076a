package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pokereview/pkg/auth"
)

// JwtMiddleware verifies the bearer token and stores the caller's id
// and email on the gin context.
func JwtMiddleware(jwt *auth.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		claims, err := jwt.Verify(strings.TrimPrefix(bearer, "Bearer "))

		if err != nil {
			slog.Info("Rejected token", "error", err)

			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if id, ok := claims["id"].(float64); ok {
			c.Set("x-user-id", int(id))
		}

		if email, ok := claims["email"].(string); ok {
			c.Set("x-user-email", email)
		}

		c.Next()
	}
}
