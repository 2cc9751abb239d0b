package services

import (
	"fmt"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"
)

type PatientService struct {
	patientRepo      *repository.PatientRepository
	palmilhogramRepo *repository.PalmilhogramRepository
}

func NewPatientService(patientRepo *repository.PatientRepository, palmilhogramRepo *repository.PalmilhogramRepository) *PatientService {
	return &PatientService{
		patientRepo:      patientRepo,
		palmilhogramRepo: palmilhogramRepo,
	}
}

// Create creates a patient owned by the calling physiotherapist.
func (s *PatientService) Create(ownerID string, req *models.CreatePatientRequest) (*models.Patient, error) {
	patient := &models.Patient{
		PhysiotherapistID: ownerID,
		Name:              req.Name,
		Document:          req.Document,
		Email:             req.Email,
		Phone:             req.Phone,
		BirthDate:         req.BirthDate,
		Weight:            req.Weight,
		Height:            req.Height,
		ShoeSize:          req.ShoeSize,
		Notes:             req.Notes,
	}
	if err := s.patientRepo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

// Get retrieves a patient owned by the caller.
func (s *PatientService) Get(ownerID, patientID string) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByOwnerAndID(ownerID, patientID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return patient, nil
}

// List lists the caller's patients with pagination and name search.
func (s *PatientService) List(ownerID string, page, pageSize int, search string) ([]models.Patient, int64, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)
	return s.patientRepo.GetByOwner(ownerID, page, pageSize, search)
}

// ListAll lists every patient, admin view.
func (s *PatientService) ListAll(page, pageSize int, search string) ([]models.Patient, int64, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)
	return s.patientRepo.GetAll(page, pageSize, search)
}

// Update applies the non-nil fields of the request to a patient owned by
// the caller.
func (s *PatientService) Update(ownerID, patientID string, req *models.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByOwnerAndID(ownerID, patientID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Document != nil {
		patient.Document = *req.Document
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		patient.BirthDate = req.BirthDate
	}
	if req.Weight != nil {
		patient.Weight = *req.Weight
	}
	if req.Height != nil {
		patient.Height = *req.Height
	}
	if req.ShoeSize != nil {
		patient.ShoeSize = *req.ShoeSize
	}
	if req.Notes != nil {
		patient.Notes = *req.Notes
	}

	if err := s.patientRepo.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// Delete removes a patient owned by the caller.
func (s *PatientService) Delete(ownerID, patientID string) error {
	if _, err := s.patientRepo.GetByOwnerAndID(ownerID, patientID); err != nil {
		return models.ErrNotFound
	}
	return s.patientRepo.Delete(patientID)
}

// CreatePalmilhogram records a standalone assessment for a patient owned by
// the caller.
func (s *PatientService) CreatePalmilhogram(assessorID string, req *models.CreatePalmilhogramRequest) (*models.Palmilhogram, error) {
	if _, err := s.patientRepo.GetByOwnerAndID(assessorID, req.PatientID); err != nil {
		return nil, models.ErrNotFound
	}
	p := palmilhogramFromInput(req.PatientID, assessorID, &req.PalmilhogramInput)
	if err := s.palmilhogramRepo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create palmilhogram: %w", err)
	}
	return p, nil
}

// ListPalmilhograms lists all assessments of a patient owned by the caller.
func (s *PatientService) ListPalmilhograms(ownerID, patientID string) ([]models.Palmilhogram, error) {
	if _, err := s.patientRepo.GetByOwnerAndID(ownerID, patientID); err != nil {
		return nil, models.ErrNotFound
	}
	return s.palmilhogramRepo.GetByPatient(patientID)
}
