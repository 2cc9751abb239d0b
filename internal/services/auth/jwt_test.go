package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer([]byte("test-secret"), time.Hour, 15*time.Minute)
}

func TestTokenIssuer_AccessTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()
	user := &models.User{ID: "user-1", Role: models.RolePhysiotherapist}

	token, err := issuer.IssueAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RolePhysiotherapist, claims.Role)
	assert.Equal(t, models.TokenPurposeAccess, claims.Purpose)
}

func TestTokenIssuer_ResetTokenIsNotAnAccessToken(t *testing.T) {
	issuer := testIssuer()

	reset, err := issuer.IssueResetToken("user-1")
	require.NoError(t, err)

	_, err = issuer.VerifyAccessToken(reset)
	assert.ErrorIs(t, err, models.ErrInvalidToken)

	claims, err := issuer.VerifyResetToken(reset)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenIssuer_AccessTokenIsNotAResetToken(t *testing.T) {
	issuer := testIssuer()

	access, err := issuer.IssueAccessToken(&models.User{ID: "user-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = issuer.VerifyResetToken(access)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute, -time.Minute)

	token, err := issuer.IssueAccessToken(&models.User{ID: "user-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = issuer.VerifyAccessToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenIssuer_RejectsTamperedToken(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.IssueAccessToken(&models.User{ID: "user-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = issuer.VerifyAccessToken(tampered)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenIssuer_RejectsForeignSecret(t *testing.T) {
	other := NewTokenIssuer([]byte("other-secret"), time.Hour, time.Hour)

	token, err := other.IssueAccessToken(&models.User{ID: "user-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = testIssuer().VerifyAccessToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	_, err := testIssuer().VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
