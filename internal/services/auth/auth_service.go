package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the slice of the user repository the session manager needs.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	SetActive(id string, active bool) error
	CheckEmailExists(email string) (bool, error)
	CheckDocumentExists(document string) (bool, error)
}

// TokenStore is the slice of the refresh-token repository the session
// manager needs.
type TokenStore interface {
	Create(userID, deviceInfo string, ttl time.Duration) (*models.RefreshToken, error)
	Consume(token string) (*models.RefreshToken, error)
	Revoke(token string) (bool, error)
	RevokeAllForUser(userID string) (int64, error)
	Cleanup() (int64, error)
}

// Mailer delivers transactional mail. Dispatch failures inside
// ForgotPassword are logged and never surfaced to the caller.
type Mailer interface {
	Send(to, subject, html string) error
}

// AuthService orchestrates the session lifecycle: login, refresh-token
// rotation, logout, revocation and password reset.
type AuthService struct {
	users      UserStore
	tokens     TokenStore
	issuer     *TokenIssuer
	mailer     Mailer
	refreshTTL time.Duration
	resetURL   string
}

// NewAuthService wires the session manager from environment configuration
// and concrete repositories.
func NewAuthService(db *gorm.DB, mailer Mailer) *AuthService {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("default-secret-key-change-in-production")
	}

	accessTTL := 24 * time.Hour
	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			accessTTL = parsed
		}
	}

	refreshTTL := 7 * 24 * time.Hour
	if ttl := os.Getenv("REFRESH_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			refreshTTL = parsed
		}
	}

	resetTTL := 15 * time.Minute
	if ttl := os.Getenv("RESET_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			resetTTL = parsed
		}
	}

	logrus.Infof("Access token TTL: %s", accessTTL)
	logrus.Infof("Refresh token TTL: %s", refreshTTL)

	resetURL := os.Getenv("RESET_PASSWORD_URL")
	if resetURL == "" {
		resetURL = "https://app.stepwise-saude.com.br/reset-password"
	}

	return NewAuthServiceWithStores(
		repository.NewUserRepository(db),
		repository.NewRefreshTokenRepository(db),
		NewTokenIssuer(jwtSecret, accessTTL, resetTTL),
		mailer,
		refreshTTL,
		resetURL,
	)
}

// NewAuthServiceWithStores wires the session manager from explicit
// collaborators.
func NewAuthServiceWithStores(users UserStore, tokens TokenStore, issuer *TokenIssuer, mailer Mailer, refreshTTL time.Duration, resetURL string) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		issuer:     issuer,
		mailer:     mailer,
		refreshTTL: refreshTTL,
		resetURL:   resetURL,
	}
}

// Issuer exposes the token issuer for the bearer-token middleware.
func (s *AuthService) Issuer() *TokenIssuer {
	return s.issuer
}

// Login authenticates a user by email and password. Unknown email and wrong
// password yield the same ErrInvalidCredentials; the inactive check runs
// only after the password verified, so probing cannot learn activity status
// without valid credentials.
func (s *AuthService) Login(req *models.LoginRequest, deviceInfo string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, models.ErrAccountInactive
	}

	return s.issueSession(user, deviceInfo)
}

// Refresh exchanges a valid refresh token for a new access token and a new
// refresh token. The presented token is consumed atomically; a concurrent
// second refresh with the same token fails with ErrInvalidToken.
func (s *AuthService) Refresh(refreshToken, deviceInfo string) (*models.AuthResponse, error) {
	consumed, err := s.tokens.Consume(refreshToken)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	user, err := s.users.GetByID(consumed.UserID)
	if err != nil {
		return nil, models.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, models.ErrAccountInactive
	}

	return s.issueSession(user, deviceInfo)
}

// Logout revokes a refresh token. Revoking an unknown or already-revoked
// token is a no-op, the call is idempotent.
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if _, err := s.tokens.Revoke(refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllSessions revokes every active refresh token for a user.
func (s *AuthService) RevokeAllSessions(userID string) error {
	count, err := s.tokens.RevokeAllForUser(userID)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	logrus.Infof("Revoked %d session(s) for user %s", count, userID)
	return nil
}

// ForgotPassword issues a 15-minute reset token and mails it when the email
// belongs to a known user. It deliberately reports nothing back: the caller
// always sees the same generic response whether or not the account exists,
// and dispatch failures are only logged.
func (s *AuthService) ForgotPassword(email string) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Errorf("Forgot password lookup failed: %v", err)
		}
		return
	}

	token, err := s.issuer.IssueResetToken(user.ID)
	if err != nil {
		logrus.Errorf("Failed to issue reset token for user %s: %v", user.ID, err)
		return
	}

	html := fmt.Sprintf(
		"<p>Olá %s,</p><p>Para redefinir sua senha, acesse o link abaixo. Ele expira em 15 minutos.</p><p><a href=\"%s?token=%s\">Redefinir senha</a></p>",
		user.Name, s.resetURL, token,
	)
	if err := s.mailer.Send(user.Email, "Redefinição de senha", html); err != nil {
		logrus.Errorf("Failed to send reset email to user %s: %v", user.ID, err)
	}
}

// ResetPassword verifies a reset token, replaces the password hash and
// revokes every open session so the user must authenticate again.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	claims, err := s.issuer.VerifyResetToken(token)
	if err != nil {
		return models.ErrInvalidToken
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return models.ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.RevokeAllSessions(user.ID); err != nil {
		logrus.Warnf("Failed to revoke sessions after password reset for user %s: %v", user.ID, err)
	}
	return nil
}

// ChangePassword replaces the caller's password after verifying the current
// one.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return models.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return models.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// Register provisions a new account. Physiotherapist and industry accounts
// are admin-provisioned; the handler enforces who may call this.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	if !models.IsValidRole(req.Role) {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}

	if exists, err := s.users.CheckEmailExists(req.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if exists {
		return nil, models.ErrEmailTaken
	}
	if exists, err := s.users.CheckDocumentExists(req.Document); err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	} else if exists {
		return nil, models.ErrDocumentTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Document:     req.Document,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
		IsActive:     true,
		Phone:        req.Phone,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		District:     req.District,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// SetUserActive flips the active flag; deactivation also closes every open
// session.
func (s *AuthService) SetUserActive(userID string, active bool) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return models.ErrNotFound
	}
	if err := s.users.SetActive(userID, active); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if !active {
		return s.RevokeAllSessions(userID)
	}
	return nil
}

// SeedAdminUser creates the seeded admin account if it does not exist yet.
func (s *AuthService) SeedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@stepwise-saude.com.br"
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		Name:         "Administrador",
		Document:     "00000000000",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// issueSession mints the access token and a fresh refresh token row.
func (s *AuthService) issueSession(user *models.User, deviceInfo string) (*models.AuthResponse, error) {
	accessToken, err := s.issuer.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokens.Create(user.ID, deviceInfo, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.issuer.AccessTTL().Seconds()),
		User:         *user,
	}, nil
}
