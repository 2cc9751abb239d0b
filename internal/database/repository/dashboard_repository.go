package repository

import (
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// OrderCountsByStatus returns status -> order count.
func (r *DashboardRepository) OrderCountsByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// RevenueCents sums totals over non-cancelled orders since a given instant.
func (r *DashboardRepository) RevenueCents(since time.Time) (int64, error) {
	var revenue int64
	err := r.db.Model(&models.Order{}).
		Where("status <> ? AND created_at >= ?", models.OrderCancelled, since).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&revenue).Error
	return revenue, err
}

// TopInsoleModels returns the most prescribed insole models.
func (r *DashboardRepository) TopInsoleModels(limit int) ([]models.ModelUsage, error) {
	var rows []models.ModelUsage
	err := r.db.Model(&models.Prescription{}).
		Select("insole_models.name AS name, COUNT(*) AS count").
		Joins("JOIN insole_models ON insole_models.id = prescriptions.insole_model_id").
		Group("insole_models.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// NewPatientsSince counts patients created at or after a given instant.
func (r *DashboardRepository) NewPatientsSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
