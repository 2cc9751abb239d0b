package auth

import (
	"fmt"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "insole-platform-backend"

// TokenIssuer mints and verifies the signed tokens the platform uses:
// short-lived access tokens and single-purpose password-reset tokens. Both
// are signed with the same secret; the purpose claim keeps them apart, so a
// reset token can never pass access verification.
type TokenIssuer struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewTokenIssuer(secret []byte, accessTTL, resetTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:    secret,
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

// AccessTTL returns the configured access token lifetime.
func (i *TokenIssuer) AccessTTL() time.Duration {
	return i.accessTTL
}

// IssueAccessToken signs an access token carrying the user's id and role.
func (i *TokenIssuer) IssueAccessToken(user *models.User) (string, error) {
	return i.sign(&models.JWTClaims{
		UserID:  user.ID,
		Role:    user.Role,
		Purpose: models.TokenPurposeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	})
}

// IssueResetToken signs a password-reset token carrying only the user id.
func (i *TokenIssuer) IssueResetToken(userID string) (string, error) {
	return i.sign(&models.JWTClaims{
		UserID:  userID,
		Purpose: models.TokenPurposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.resetTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
			Subject:   userID,
		},
	})
}

// VerifyAccessToken parses and checks an access token. Every failure mode,
// bad signature, malformed token, expiry, wrong purpose, collapses into
// models.ErrInvalidToken; an invalid token is an expected outcome here, not
// an exceptional one.
func (i *TokenIssuer) VerifyAccessToken(tokenString string) (*models.JWTClaims, error) {
	return i.verify(tokenString, models.TokenPurposeAccess)
}

// VerifyResetToken parses and checks a password-reset token.
func (i *TokenIssuer) VerifyResetToken(tokenString string) (*models.JWTClaims, error) {
	return i.verify(tokenString, models.TokenPurposePasswordReset)
}

func (i *TokenIssuer) sign(claims *models.JWTClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (i *TokenIssuer) verify(tokenString, purpose string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, models.ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}
