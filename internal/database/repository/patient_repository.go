package repository

import (
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create creates a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// GetByID retrieves a patient by ID
func (r *PatientRepository) GetByID(id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByOwnerAndID retrieves a patient only if owned by the physiotherapist
func (r *PatientRepository) GetByOwnerAndID(ownerID, id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ? AND physiotherapist_id = ?", id, ownerID).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByOwner lists a physiotherapist's patients with pagination and name search
func (r *PatientRepository) GetByOwner(ownerID string, page, pageSize int, search string) ([]models.Patient, int64, error) {
	var patients []models.Patient
	var total int64
	query := r.db.Model(&models.Patient{}).Where("physiotherapist_id = ?", ownerID)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

// GetAll lists every patient, admin view
func (r *PatientRepository) GetAll(page, pageSize int, search string) ([]models.Patient, int64, error) {
	var patients []models.Patient
	var total int64
	query := r.db.Model(&models.Patient{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

// Update updates a patient
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete removes a patient record
func (r *PatientRepository) Delete(id string) error {
	return r.db.Delete(&models.Patient{}, "id = ?", id).Error
}
