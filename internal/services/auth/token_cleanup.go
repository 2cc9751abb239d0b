package auth

import (
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TokenCleanupService periodically deletes refresh-token rows that are
// expired or revoked. Pure storage hygiene: token validity never depends on
// the sweep having run.
type TokenCleanupService struct {
	tokens   TokenStore
	interval time.Duration
	stopChan chan bool
}

func NewTokenCleanupService(db *gorm.DB) *TokenCleanupService {
	return &TokenCleanupService{
		tokens:   repository.NewRefreshTokenRepository(db),
		interval: 24 * time.Hour,
		stopChan: make(chan bool),
	}
}

// Start starts the cleanup loop in the background.
func (s *TokenCleanupService) Start() {
	go s.run()
	logrus.Info("Token cleanup service started")
}

// Stop stops the cleanup loop.
func (s *TokenCleanupService) Stop() {
	s.stopChan <- true
	logrus.Info("Token cleanup service stopped")
}

// SetInterval sets the cleanup interval.
func (s *TokenCleanupService) SetInterval(interval time.Duration) {
	s.interval = interval
}

func (s *TokenCleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *TokenCleanupService) cleanup() {
	count, err := s.tokens.Cleanup()
	if err != nil {
		logrus.Errorf("Failed to cleanup refresh tokens: %v", err)
		return
	}
	if count > 0 {
		logrus.Infof("Token cleanup removed %d row(s)", count)
	}
}
