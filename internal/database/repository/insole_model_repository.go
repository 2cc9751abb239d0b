package repository

import (
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
)

type InsoleModelRepository struct {
	db *gorm.DB
}

func NewInsoleModelRepository(db *gorm.DB) *InsoleModelRepository {
	return &InsoleModelRepository{db: db}
}

func (r *InsoleModelRepository) Create(m *models.InsoleModel) error {
	return r.db.Create(m).Error
}

func (r *InsoleModelRepository) GetByID(id string) (*models.InsoleModel, error) {
	var m models.InsoleModel
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll lists insole models; activeOnly narrows to prescribable ones.
func (r *InsoleModelRepository) GetAll(activeOnly bool) ([]models.InsoleModel, error) {
	var list []models.InsoleModel
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *InsoleModelRepository) Update(m *models.InsoleModel) error {
	return r.db.Save(m).Error
}

func (r *InsoleModelRepository) Delete(id string) error {
	return r.db.Delete(&models.InsoleModel{}, "id = ?", id).Error
}
