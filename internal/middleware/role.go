package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/auth"
)

// RequireRole gates a route to the given mess roles. It must run after
// AuthMiddleware, which stores the validated token's role claim on the
// context.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if !auth.ValidRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
