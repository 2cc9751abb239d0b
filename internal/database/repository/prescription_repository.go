package repository

import (
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

// Create creates a new prescription
func (r *PrescriptionRepository) Create(p *models.Prescription) error {
	return r.db.Create(p).Error
}

// GetByID retrieves a prescription with its associations preloaded
func (r *PrescriptionRepository) GetByID(id string) (*models.Prescription, error) {
	var p models.Prescription
	err := r.db.Preload("Patient").Preload("Palmilhogram").
		Preload("InsoleModel").Preload("Coating").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByPrescriber lists prescriptions created by a physiotherapist
func (r *PrescriptionRepository) GetByPrescriber(prescriberID string, page, pageSize int) ([]models.Prescription, int64, error) {
	var list []models.Prescription
	var total int64
	query := r.db.Model(&models.Prescription{}).Where("prescriber_id = ?", prescriberID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Patient").Preload("InsoleModel").Preload("Coating").
		Order("created_at DESC").
		Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update updates a prescription
func (r *PrescriptionRepository) Update(p *models.Prescription) error {
	return r.db.Save(p).Error
}
