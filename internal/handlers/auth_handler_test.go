package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memUserStore is a fixed-content in-memory user store.
type memUserStore struct {
	users map[string]*models.User
}

func (s *memUserStore) Create(user *models.User) error { return nil }
func (s *memUserStore) GetByID(id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *memUserStore) GetByEmail(email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *memUserStore) Update(user *models.User) error              { return nil }
func (s *memUserStore) SetActive(id string, active bool) error      { return nil }
func (s *memUserStore) CheckEmailExists(string) (bool, error)       { return false, nil }
func (s *memUserStore) CheckDocumentExists(string) (bool, error)    { return false, nil }

// memTokenStore keeps refresh tokens in a map and supports one-shot
// consumption.
type memTokenStore struct {
	next   int
	tokens map[string]string // token -> user id
}

func (s *memTokenStore) Create(userID, deviceInfo string, ttl time.Duration) (*models.RefreshToken, error) {
	s.next++
	token := "refresh-" + string(rune('a'+s.next))
	s.tokens[token] = userID
	return &models.RefreshToken{Token: token, UserID: userID, ExpiresAt: time.Now().Add(ttl)}, nil
}

func (s *memTokenStore) Consume(token string) (*models.RefreshToken, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.tokens, token)
	return &models.RefreshToken{Token: token, UserID: userID}, nil
}

func (s *memTokenStore) Revoke(token string) (bool, error) {
	if _, ok := s.tokens[token]; !ok {
		return false, nil
	}
	delete(s.tokens, token)
	return true, nil
}

func (s *memTokenStore) RevokeAllForUser(userID string) (int64, error) {
	var n int64
	for token, uid := range s.tokens {
		if uid == userID {
			delete(s.tokens, token)
			n++
		}
	}
	return n, nil
}

func (s *memTokenStore) Cleanup() (int64, error) { return 0, nil }

type noopMailer struct{}

func (noopMailer) Send(to, subject, html string) error { return nil }

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Secret@123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memUserStore{users: map[string]*models.User{
		"fisio@example.com": {
			ID:           "user-1",
			Email:        "fisio@example.com",
			Role:         models.RolePhysiotherapist,
			PasswordHash: string(hashed),
			IsActive:     true,
		},
		"inativo@example.com": {
			ID:           "user-2",
			Email:        "inativo@example.com",
			Role:         models.RolePhysiotherapist,
			PasswordHash: string(hashed),
			IsActive:     false,
		},
	}}
	tokens := &memTokenStore{tokens: map[string]string{}}
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour, 15*time.Minute)
	service := auth.NewAuthServiceWithStores(users, tokens, issuer, noopMailer{}, 7*24*time.Hour, "https://example.com/reset")

	handler := NewAuthHandler(service)

	r := gin.New()
	r.POST("/api/v1/auth/login", handler.Login)
	r.POST("/api/v1/auth/refresh", handler.Refresh)
	r.POST("/api/v1/auth/logout", handler.Logout)
	r.POST("/api/v1/auth/forgot-password", handler.ForgotPassword)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	r := newAuthTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "fisio@example.com", "password": "Secret@123"})
		require.Equal(t, http.StatusOK, w.Code)

		var response models.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.Empty(t, response.User.PasswordHash)
	})

	t.Run("unknown email and wrong password return the same body", func(t *testing.T) {
		unknown := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "ghost@example.com", "password": "x"})
		wrongPass := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "fisio@example.com", "password": "x"})

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.JSONEq(t, unknown.Body.String(), wrongPass.Body.String())
	})

	t.Run("inactive account", func(t *testing.T) {
		w := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "inativo@example.com", "password": "Secret@123"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "fisio@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})
}

func TestAuthHandler_RefreshRotation(t *testing.T) {
	r := newAuthTestRouter(t)

	login := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "fisio@example.com", "password": "Secret@123"})
	require.Equal(t, http.StatusOK, login.Code)

	var session models.AuthResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &session))

	// First exchange succeeds and hands out a different refresh token
	first := postJSON(t, r, "/api/v1/auth/refresh", gin.H{"refresh_token": session.RefreshToken})
	require.Equal(t, http.StatusOK, first.Code)

	var rotated models.AuthResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &rotated))
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed token fails
	replay := postJSON(t, r, "/api/v1/auth/refresh", gin.H{"refresh_token": session.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, replay.Code)

	// The rotated token still works
	second := postJSON(t, r, "/api/v1/auth/refresh", gin.H{"refresh_token": rotated.RefreshToken})
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestAuthHandler_LogoutEndsSession(t *testing.T) {
	r := newAuthTestRouter(t)

	login := postJSON(t, r, "/api/v1/auth/login", gin.H{"email": "fisio@example.com", "password": "Secret@123"})
	require.Equal(t, http.StatusOK, login.Code)

	var session models.AuthResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &session))

	logout := postJSON(t, r, "/api/v1/auth/logout", gin.H{"refresh_token": session.RefreshToken})
	assert.Equal(t, http.StatusOK, logout.Code)

	// Logout is idempotent
	again := postJSON(t, r, "/api/v1/auth/logout", gin.H{"refresh_token": session.RefreshToken})
	assert.Equal(t, http.StatusOK, again.Code)

	refresh := postJSON(t, r, "/api/v1/auth/refresh", gin.H{"refresh_token": session.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, refresh.Code)
}

func TestAuthHandler_ForgotPasswordIsSilent(t *testing.T) {
	r := newAuthTestRouter(t)

	known := postJSON(t, r, "/api/v1/auth/forgot-password", gin.H{"email": "fisio@example.com"})
	unknown := postJSON(t, r, "/api/v1/auth/forgot-password", gin.H{"email": "ghost@example.com"})

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.JSONEq(t, known.Body.String(), unknown.Body.String())
}
