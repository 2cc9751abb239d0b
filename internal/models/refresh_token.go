package models

import (
	"time"
)

// RefreshToken is a server-side session credential. A token is valid iff
// it is not revoked and its expiry is strictly in the future.
type RefreshToken struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Token      string    `json:"token" gorm:"type:varchar(128);not null;unique;index"`
	UserID     string    `json:"user_id" gorm:"not null;type:uuid;index:idx_refresh_tokens_user_revoked"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"not null;index"`
	IsRevoked  bool      `json:"is_revoked" gorm:"default:false;index:idx_refresh_tokens_user_revoked"`
	DeviceInfo string    `json:"device_info" gorm:"type:varchar(500)"`
	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// Valid reports whether the token may still be exchanged at the given instant.
// A token whose expiry equals now is already expired.
func (t *RefreshToken) Valid(now time.Time) bool {
	return !t.IsRevoked && now.Before(t.ExpiresAt)
}
