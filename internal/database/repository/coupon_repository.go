package repository

import (
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) Create(c *models.Coupon) error {
	return r.db.Create(c).Error
}

func (r *CouponRepository) GetByID(id string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.db.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) GetAll() ([]models.Coupon, error) {
	var list []models.Coupon
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *CouponRepository) Update(c *models.Coupon) error {
	return r.db.Save(c).Error
}

func (r *CouponRepository) Delete(id string) error {
	return r.db.Delete(&models.Coupon{}, "id = ?", id).Error
}

// IncrementUsage bumps used_count for a coupon atomically.
func (r *CouponRepository) IncrementUsage(id string) error {
	return r.db.Model(&models.Coupon{}).Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}
