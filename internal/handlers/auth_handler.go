package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// forgotPasswordMessage is the single answer ForgotPassword ever gives,
// whether or not the email exists.
const forgotPasswordMessage = "If the email is registered, a password reset link has been sent"

type AuthHandler struct {
	authService *auth.AuthService
}

func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// deviceInfo condenses the caller's user agent and IP for the refresh-token
// row.
func deviceInfo(c *gin.Context) string {
	return fmt.Sprintf("%s|%s", c.GetHeader("User-Agent"), c.ClientIP())
}

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.authService.Login(&req, deviceInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrAccountInactive):
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		default:
			logrus.Errorf("Login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to login"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchange a refresh token for a new token pair; the presented token is rotated out
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.authService.Refresh(req.RefreshToken, deviceInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidToken), errors.Is(err, models.ErrAccountInactive):
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		default:
			logrus.Errorf("Token refresh failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to refresh token"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Logout user
// @Description Revoke a refresh token; revoking an unknown token is a no-op
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LogoutRequest true "Logout request"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req models.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.RefreshToken = ""
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		logrus.Errorf("Logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ForgotPassword godoc
// @Summary Request password reset
// @Description Always answers with the same message whether or not the email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	h.authService.ForgotPassword(req.Email)

	c.JSON(http.StatusOK, gin.H{"message": forgotPasswordMessage})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Set a new password with a valid reset token; every open session is revoked
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		if errors.Is(err, models.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		logrus.Errorf("Password reset failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// ChangePassword godoc
// @Summary Change password
// @Description Change the caller's password after verifying the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChangePasswordRequest true "Change password request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.authService.ChangePassword(identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is incorrect"})
			return
		}
		logrus.Errorf("Password change failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
