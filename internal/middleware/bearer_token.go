package middleware

import (
	"net/http"
	"strings"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	ContextIdentity = "identity"
	ContextUserID   = "user_id"
	ContextRole     = "role"
)

// RequireAuth validates the bearer access token and attaches the caller's
// identity to the request context. Verification is stateless: the token is
// pure proof, no database lookup happens here.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing or malformed authorization header"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := issuer.VerifyAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		identity := &models.Identity{UserID: claims.UserID, Role: claims.Role}
		c.Set(ContextIdentity, identity)
		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextRole, identity.Role)

		c.Next()
	}
}

// IdentityFrom returns the authenticated identity attached by RequireAuth.
func IdentityFrom(c *gin.Context) *models.Identity {
	return c.MustGet(ContextIdentity).(*models.Identity)
}
