package repository

import (
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"gorm.io/gorm"
)

type PalmilhogramRepository struct {
	db *gorm.DB
}

func NewPalmilhogramRepository(db *gorm.DB) *PalmilhogramRepository {
	return &PalmilhogramRepository{db: db}
}

// Create creates a new palmilhogram
func (r *PalmilhogramRepository) Create(p *models.Palmilhogram) error {
	return r.db.Create(p).Error
}

// GetByID retrieves a palmilhogram by ID
func (r *PalmilhogramRepository) GetByID(id string) (*models.Palmilhogram, error) {
	var p models.Palmilhogram
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByPatient lists all assessments for a patient, newest first
func (r *PalmilhogramRepository) GetByPatient(patientID string) ([]models.Palmilhogram, error) {
	var list []models.Palmilhogram
	err := r.db.Where("patient_id = ?", patientID).Order("created_at DESC").Find(&list).Error
	return list, err
}
