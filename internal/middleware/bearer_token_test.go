package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(issuer *auth.TokenIssuer, roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(issuer)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "role": identity.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour, time.Hour)

	validToken, err := issuer.IssueAccessToken(&models.User{ID: "user-1", Role: models.RolePhysiotherapist})
	require.NoError(t, err)

	expiredIssuer := auth.NewTokenIssuer([]byte("test-secret"), -time.Minute, time.Hour)
	expiredToken, err := expiredIssuer.IssueAccessToken(&models.User{ID: "user-1", Role: models.RolePhysiotherapist})
	require.NoError(t, err)

	resetToken, err := issuer.IssueResetToken("user-1")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"reset token rejected on access routes", "Bearer " + resetToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	r := protectedRouter(issuer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.authorization)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "user-1")
				assert.Contains(t, w.Body.String(), models.RolePhysiotherapist)
			} else {
				assert.Contains(t, w.Body.String(), "message")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour, time.Hour)

	physioToken, err := issuer.IssueAccessToken(&models.User{ID: "user-1", Role: models.RolePhysiotherapist})
	require.NoError(t, err)
	adminToken, err := issuer.IssueAccessToken(&models.User{ID: "user-2", Role: models.RoleAdmin})
	require.NoError(t, err)

	r := protectedRouter(issuer, models.RoleAdmin, models.RoleIndustry)

	t.Run("role outside allow-list", func(t *testing.T) {
		w := doRequest(r, "Bearer "+physioToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role inside allow-list", func(t *testing.T) {
		w := doRequest(r, "Bearer "+adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
