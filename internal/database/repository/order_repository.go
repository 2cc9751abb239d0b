package repository

import (
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID retrieves an order with its prescription chain preloaded
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Prescription").
		Preload("Prescription.Patient").
		Preload("Prescription.InsoleModel").
		Preload("Prescription.Coating").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByBuyer lists a physiotherapist's orders, newest first
func (r *OrderRepository) GetByBuyer(buyerID string, page, pageSize int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64
	query := r.db.Model(&models.Order{}).Where("buyer_id = ?", buyerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Prescription").Preload("Prescription.Patient").
		Order("created_at DESC").
		Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetAll lists every order with an optional status filter, the industry and
// admin view of the fulfillment pipeline.
func (r *OrderRepository) GetAll(page, pageSize int, status string) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64
	query := r.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Prescription").Preload("Prescription.Patient").
		Order("created_at DESC").
		Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update updates an order
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// GetCreatedBetween lists orders created in [from, to), for exports
func (r *OrderRepository) GetCreatedBetween(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Prescription").Preload("Prescription.Patient").
		Preload("Prescription.InsoleModel").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
