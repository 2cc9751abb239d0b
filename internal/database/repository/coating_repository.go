package repository

import (
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
)

type CoatingRepository struct {
	db *gorm.DB
}

func NewCoatingRepository(db *gorm.DB) *CoatingRepository {
	return &CoatingRepository{db: db}
}

func (r *CoatingRepository) Create(c *models.Coating) error {
	return r.db.Create(c).Error
}

func (r *CoatingRepository) GetByID(id string) (*models.Coating, error) {
	var c models.Coating
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll lists coatings; activeOnly narrows to prescribable ones.
func (r *CoatingRepository) GetAll(activeOnly bool) ([]models.Coating, error) {
	var list []models.Coating
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *CoatingRepository) Update(c *models.Coating) error {
	return r.db.Save(c).Error
}

func (r *CoatingRepository) Delete(id string) error {
	return r.db.Delete(&models.Coating{}, "id = ?", id).Error
}
