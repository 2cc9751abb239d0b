package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token purposes embedded in JWT claims. A reset token can never be used as
// an access token and vice versa: the purpose is checked on every
// verification, not only the expiry.
const (
	TokenPurposeAccess        = "access"
	TokenPurposePasswordReset = "password_reset"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the admin-provisioned registration payload
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Document   string `json:"document" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	User         User   `json:"user"`
}

// RefreshTokenRequest represents the refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the logout request
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ForgotPasswordRequest represents the forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the reset-password request
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// ChangePasswordRequest represents a request to change the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// SetUserActiveRequest represents a request to set user active status
type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// JWTClaims represents the signed claims carried by access and
// password-reset tokens.
type JWTClaims struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller attached to the request context by
// the bearer-token middleware.
type Identity struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
