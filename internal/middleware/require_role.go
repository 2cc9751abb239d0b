package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole enforces that the authenticated caller has one of the allowed
// roles. Must run after RequireAuth. The check is a pure function of the
// attached role and the allow-list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || !allowed[role.(string)] {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
