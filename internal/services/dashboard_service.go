package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/cache"
	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/sirupsen/logrus"
)

const dashboardCacheTTL = 60 * time.Second

// DashboardService aggregates the admin analytics snapshot. Results are
// cached in Redis for a minute; the cache failing open only costs extra
// queries.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	cache         *cache.Client
}

func NewDashboardService(dashboardRepo *repository.DashboardRepository, cacheClient *cache.Client) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cache:         cacheClient,
	}
}

// Stats returns the analytics snapshot for the trailing periodDays window.
func (s *DashboardService) Stats(ctx context.Context, periodDays int) (*models.DashboardStats, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	key := fmt.Sprintf("dashboard:stats:%d", periodDays)
	if cached, _ := s.cache.Get(ctx, key); cached != nil {
		var stats models.DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	since := time.Now().AddDate(0, 0, -periodDays)

	byStatus, err := s.dashboardRepo.OrderCountsByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	revenue, err := s.dashboardRepo.RevenueCents(since)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	topModels, err := s.dashboardRepo.TopInsoleModels(5)
	if err != nil {
		return nil, fmt.Errorf("failed to rank insole models: %w", err)
	}
	newPatients, err := s.dashboardRepo.NewPatientsSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}

	stats := &models.DashboardStats{
		OrdersByStatus:  byStatus,
		RevenueCents:    revenue,
		TopInsoleModels: topModels,
		NewPatients:     newPatients,
		PeriodDays:      periodDays,
	}

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, encoded, dashboardCacheTTL); err != nil {
			logrus.Warnf("Failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}
