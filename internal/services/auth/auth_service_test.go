package auth

import (
	"testing"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserStore is a mock implementation of UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) SetActive(id string, active bool) error {
	args := m.Called(id, active)
	return args.Error(0)
}

func (m *MockUserStore) CheckEmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) CheckDocumentExists(document string) (bool, error) {
	args := m.Called(document)
	return args.Bool(0), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Create(userID, deviceInfo string, ttl time.Duration) (*models.RefreshToken, error) {
	args := m.Called(userID, deviceInfo, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockTokenStore) Consume(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockTokenStore) Revoke(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) RevokeAllForUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenStore) Cleanup() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockMailer is a mock implementation of Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, html string) error {
	args := m.Called(to, subject, html)
	return args.Error(0)
}

func newTestService(users *MockUserStore, tokens *MockTokenStore, mailer *MockMailer) *AuthService {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour, 15*time.Minute)
	return NewAuthServiceWithStores(users, tokens, issuer, mailer, 7*24*time.Hour, "https://example.com/reset-password")
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(t *testing.T, users *MockUserStore, tokens *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "fisio@example.com",
			password: "Secret@123",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				users.On("GetByEmail", "fisio@example.com").Return(&models.User{
					ID:           "user-1",
					Email:        "fisio@example.com",
					Role:         models.RolePhysiotherapist,
					PasswordHash: hashPassword(t, "Secret@123"),
					IsActive:     true,
				}, nil)
				tokens.On("Create", "user-1", mock.Anything, 7*24*time.Hour).
					Return(&models.RefreshToken{Token: "refresh-1", UserID: "user-1"}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Secret@123",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				users.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "fisio@example.com",
			password: "wrong",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				users.On("GetByEmail", "fisio@example.com").Return(&models.User{
					ID:           "user-1",
					PasswordHash: hashPassword(t, "Secret@123"),
					IsActive:     true,
				}, nil)
			},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:     "inactive account with valid password",
			email:    "fisio@example.com",
			password: "Secret@123",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				users.On("GetByEmail", "fisio@example.com").Return(&models.User{
					ID:           "user-1",
					PasswordHash: hashPassword(t, "Secret@123"),
					IsActive:     false,
				}, nil)
			},
			expectedError: models.ErrAccountInactive,
		},
		{
			name:     "inactive account with wrong password stays indistinguishable",
			email:    "fisio@example.com",
			password: "wrong",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				users.On("GetByEmail", "fisio@example.com").Return(&models.User{
					ID:           "user-1",
					PasswordHash: hashPassword(t, "Secret@123"),
					IsActive:     false,
				}, nil)
			},
			expectedError: models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserStore)
			tokens := new(MockTokenStore)
			tt.setupMock(t, users, tokens)

			service := newTestService(users, tokens, new(MockMailer))
			response, err := service.Login(&models.LoginRequest{Email: tt.email, Password: tt.password}, "test-device")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, response)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, response.AccessToken)
				assert.Equal(t, "refresh-1", response.RefreshToken)
				assert.Equal(t, "Bearer", response.TokenType)

				claims, err := service.Issuer().VerifyAccessToken(response.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, models.RolePhysiotherapist, claims.Role)
			}

			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginErrorsAreIdentical(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", "known@example.com").Return(&models.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "Secret@123"),
		IsActive:     true,
	}, nil)

	service := newTestService(users, new(MockTokenStore), new(MockMailer))

	_, errUnknown := service.Login(&models.LoginRequest{Email: "nobody@example.com", Password: "x"}, "d")
	_, errWrongPass := service.Login(&models.LoginRequest{Email: "known@example.com", Password: "x"}, "d")

	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_Refresh(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		setupMock     func(t *testing.T, users *MockUserStore, tokens *MockTokenStore)
		expectedError error
	}{
		{
			name:  "successful rotation",
			token: "refresh-old",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				tokens.On("Consume", "refresh-old").Return(&models.RefreshToken{
					Token:  "refresh-old",
					UserID: "user-1",
				}, nil)
				users.On("GetByID", "user-1").Return(&models.User{
					ID:       "user-1",
					Role:     models.RolePhysiotherapist,
					IsActive: true,
				}, nil)
				tokens.On("Create", "user-1", mock.Anything, 7*24*time.Hour).
					Return(&models.RefreshToken{Token: "refresh-new", UserID: "user-1"}, nil)
			},
		},
		{
			name:  "already consumed token",
			token: "refresh-used",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				tokens.On("Consume", "refresh-used").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: models.ErrInvalidToken,
		},
		{
			name:  "deactivated user",
			token: "refresh-old",
			setupMock: func(t *testing.T, users *MockUserStore, tokens *MockTokenStore) {
				tokens.On("Consume", "refresh-old").Return(&models.RefreshToken{
					Token:  "refresh-old",
					UserID: "user-1",
				}, nil)
				users.On("GetByID", "user-1").Return(&models.User{
					ID:       "user-1",
					IsActive: false,
				}, nil)
			},
			expectedError: models.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserStore)
			tokens := new(MockTokenStore)
			tt.setupMock(t, users, tokens)

			service := newTestService(users, tokens, new(MockMailer))
			response, err := service.Refresh(tt.token, "test-device")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, response)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "refresh-new", response.RefreshToken)
				assert.NotEmpty(t, response.AccessToken)
			}

			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	tokens := new(MockTokenStore)
	tokens.On("Revoke", "unknown-token").Return(false, nil)

	service := newTestService(new(MockUserStore), tokens, new(MockMailer))

	assert.NoError(t, service.Logout("unknown-token"))
	tokens.AssertExpectations(t)
}

func TestAuthService_LogoutEmptyTokenIsNoop(t *testing.T) {
	tokens := new(MockTokenStore)

	service := newTestService(new(MockUserStore), tokens, new(MockMailer))

	assert.NoError(t, service.Logout(""))
	tokens.AssertNotCalled(t, "Revoke", mock.Anything)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("known email sends reset mail", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByEmail", "fisio@example.com").Return(&models.User{
			ID:    "user-1",
			Name:  "Fisio",
			Email: "fisio@example.com",
		}, nil)

		mailer := new(MockMailer)
		mailer.On("Send", "fisio@example.com", mock.Anything, mock.Anything).Return(nil)

		service := newTestService(users, new(MockTokenStore), mailer)
		service.ForgotPassword("fisio@example.com")

		mailer.AssertExpectations(t)
	})

	t.Run("unknown email sends nothing", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		mailer := new(MockMailer)

		service := newTestService(users, new(MockTokenStore), mailer)
		service.ForgotPassword("nobody@example.com")

		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByEmail", "fisio@example.com").Return(&models.User{
			ID:    "user-1",
			Email: "fisio@example.com",
		}, nil)

		mailer := new(MockMailer)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		service := newTestService(users, new(MockTokenStore), mailer)
		service.ForgotPassword("fisio@example.com")

		mailer.AssertExpectations(t)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("valid token replaces password and revokes sessions", func(t *testing.T) {
		users := new(MockUserStore)
		tokens := new(MockTokenStore)

		oldHash := hashPassword(t, "OldPass@123")
		user := &models.User{ID: "user-1", PasswordHash: oldHash}
		users.On("GetByID", "user-1").Return(user, nil)
		users.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
		tokens.On("RevokeAllForUser", "user-1").Return(int64(2), nil)

		service := newTestService(users, tokens, new(MockMailer))

		token, err := service.Issuer().IssueResetToken("user-1")
		require.NoError(t, err)

		require.NoError(t, service.ResetPassword(token, "NewPass@123"))
		assert.NotEqual(t, oldHash, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("NewPass@123")))

		users.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		users := new(MockUserStore)
		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		expiredIssuer := NewTokenIssuer([]byte("test-secret"), time.Hour, -time.Minute)
		token, err := expiredIssuer.IssueResetToken("user-1")
		require.NoError(t, err)

		assert.ErrorIs(t, service.ResetPassword(token, "NewPass@123"), models.ErrInvalidToken)
		users.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("access token cannot reset a password", func(t *testing.T) {
		users := new(MockUserStore)
		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		access, err := service.Issuer().IssueAccessToken(&models.User{ID: "user-1", Role: models.RoleAdmin})
		require.NoError(t, err)

		assert.ErrorIs(t, service.ResetPassword(access, "NewPass@123"), models.ErrInvalidToken)
		users.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByID", "user-1").Return(&models.User{
			ID:           "user-1",
			PasswordHash: hashPassword(t, "Current@123"),
		}, nil)

		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		err := service.ChangePassword("user-1", "wrong", "New@123")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		users.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("valid change", func(t *testing.T) {
		users := new(MockUserStore)
		user := &models.User{ID: "user-1", PasswordHash: hashPassword(t, "Current@123")}
		users.On("GetByID", "user-1").Return(user, nil)
		users.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		require.NoError(t, service.ChangePassword("user-1", "Current@123", "New@123"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("New@123")))
		users.AssertExpectations(t)
	})
}

func TestAuthService_SetUserActive(t *testing.T) {
	t.Run("deactivation revokes sessions", func(t *testing.T) {
		users := new(MockUserStore)
		tokens := new(MockTokenStore)
		users.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)
		users.On("SetActive", "user-1", false).Return(nil)
		tokens.On("RevokeAllForUser", "user-1").Return(int64(1), nil)

		service := newTestService(users, tokens, new(MockMailer))

		require.NoError(t, service.SetUserActive("user-1", false))
		tokens.AssertExpectations(t)
	})

	t.Run("activation leaves sessions alone", func(t *testing.T) {
		users := new(MockUserStore)
		tokens := new(MockTokenStore)
		users.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)
		users.On("SetActive", "user-1", true).Return(nil)

		service := newTestService(users, tokens, new(MockMailer))

		require.NoError(t, service.SetUserActive("user-1", true))
		tokens.AssertNotCalled(t, "RevokeAllForUser", mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("GetByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		assert.ErrorIs(t, service.SetUserActive("ghost", false), models.ErrNotFound)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CheckEmailExists", "dup@example.com").Return(true, nil)

		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		_, err := service.Register(&models.RegisterRequest{
			Name:     "Dup",
			Email:    "dup@example.com",
			Document: "123",
			Password: "Secret@123",
			Role:     models.RolePhysiotherapist,
		})
		assert.ErrorIs(t, err, models.ErrEmailTaken)
	})

	t.Run("duplicate document", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CheckEmailExists", "new@example.com").Return(false, nil)
		users.On("CheckDocumentExists", "123").Return(true, nil)

		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		_, err := service.Register(&models.RegisterRequest{
			Name:     "New",
			Email:    "new@example.com",
			Document: "123",
			Password: "Secret@123",
			Role:     models.RolePhysiotherapist,
		})
		assert.ErrorIs(t, err, models.ErrDocumentTaken)
	})

	t.Run("successful registration hashes the password", func(t *testing.T) {
		users := new(MockUserStore)
		users.On("CheckEmailExists", "new@example.com").Return(false, nil)
		users.On("CheckDocumentExists", "123").Return(false, nil)
		users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		service := newTestService(users, new(MockTokenStore), new(MockMailer))

		user, err := service.Register(&models.RegisterRequest{
			Name:     "New",
			Email:    "new@example.com",
			Document: "123",
			Password: "Secret@123",
			Role:     models.RolePhysiotherapist,
		})
		require.NoError(t, err)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "Secret@123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret@123")))
	})
}
