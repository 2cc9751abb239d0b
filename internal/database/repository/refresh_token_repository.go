package repository

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create mints a new opaque refresh token for a user and persists it. The
// token string carries 256 bits of entropy.
func (r *RefreshTokenRepository) Create(userID, deviceInfo string, ttl time.Duration) (*models.RefreshToken, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}

	refreshToken := &models.RefreshToken{
		Token:      hex.EncodeToString(tokenBytes),
		UserID:     userID,
		ExpiresAt:  time.Now().Add(ttl),
		IsRevoked:  false,
		DeviceInfo: deviceInfo,
	}

	if err := r.db.Create(refreshToken).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return refreshToken, nil
}

// FindValid returns the token row only if it is neither revoked nor expired.
// Missing, revoked and expired rows all yield gorm.ErrRecordNotFound so the
// caller cannot tell them apart.
func (r *RefreshTokenRepository) FindValid(token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken
	err := r.db.Where("token = ? AND is_revoked = ? AND expires_at > ?", token, false, time.Now()).
		First(&refreshToken).Error
	if err != nil {
		return nil, err
	}
	return &refreshToken, nil
}

// Consume atomically revokes a still-valid token and returns it. The single
// conditional UPDATE is the rotation compare-and-swap: when two refreshes
// race, exactly one sees RowsAffected == 1 and the loser gets
// gorm.ErrRecordNotFound. Correct across replicas, no in-process state.
func (r *RefreshTokenRepository) Consume(token string) (*models.RefreshToken, error) {
	var rows []models.RefreshToken
	res := r.db.Model(&rows).
		Clauses(clause.Returning{}).
		Where("token = ? AND is_revoked = ? AND expires_at > ?", token, false, time.Now()).
		Update("is_revoked", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 || len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// Revoke revokes a token and reports whether a row was affected. Revoking
// an unknown or already-revoked token is not an error.
func (r *RefreshTokenRepository) Revoke(token string) (bool, error) {
	res := r.db.Model(&models.RefreshToken{}).
		Where("token = ? AND is_revoked = ?", token, false).
		Update("is_revoked", true)
	return res.RowsAffected > 0, res.Error
}

// RevokeAllForUser revokes every active token for a user in one pass.
func (r *RefreshTokenRepository) RevokeAllForUser(userID string) (int64, error) {
	res := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Update("is_revoked", true)
	return res.RowsAffected, res.Error
}

// CountActiveForUser counts non-revoked tokens for a user.
func (r *RefreshTokenRepository) CountActiveForUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND is_revoked = ? AND expires_at > ?", userID, false, time.Now()).
		Count(&count).Error
	return count, err
}

// Cleanup deletes rows that are expired or revoked. Storage hygiene only,
// validity never depends on it.
func (r *RefreshTokenRepository) Cleanup() (int64, error) {
	res := r.db.Where("expires_at < ? OR is_revoked = ?", time.Now(), true).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
