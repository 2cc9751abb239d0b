package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Valid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token RefreshToken
		valid bool
	}{
		{"future expiry", RefreshToken{ExpiresAt: now.Add(time.Hour)}, true},
		{"past expiry", RefreshToken{ExpiresAt: now.Add(-time.Hour)}, false},
		{"expiry exactly now is expired", RefreshToken{ExpiresAt: now}, false},
		{"revoked with future expiry", RefreshToken{ExpiresAt: now.Add(time.Hour), IsRevoked: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.token.Valid(now))
		})
	}
}
