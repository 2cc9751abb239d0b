package services

import (
	"fmt"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"
)

type PrescriptionService struct {
	prescriptionRepo *repository.PrescriptionRepository
	palmilhogramRepo *repository.PalmilhogramRepository
	patientRepo      *repository.PatientRepository
	insoleModelRepo  *repository.InsoleModelRepository
	coatingRepo      *repository.CoatingRepository
}

func NewPrescriptionService(
	prescriptionRepo *repository.PrescriptionRepository,
	palmilhogramRepo *repository.PalmilhogramRepository,
	patientRepo *repository.PatientRepository,
	insoleModelRepo *repository.InsoleModelRepository,
	coatingRepo *repository.CoatingRepository,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptionRepo: prescriptionRepo,
		palmilhogramRepo: palmilhogramRepo,
		patientRepo:      patientRepo,
		insoleModelRepo:  insoleModelRepo,
		coatingRepo:      coatingRepo,
	}
}

// Create creates a draft prescription for an existing palmilhogram. The
// palmilhogram must belong to a patient owned by the caller.
func (s *PrescriptionService) Create(prescriberID string, req *models.CreatePrescriptionRequest) (*models.Prescription, error) {
	if _, err := s.patientRepo.GetByOwnerAndID(prescriberID, req.PatientID); err != nil {
		return nil, models.ErrNotFound
	}
	palmilhogram, err := s.palmilhogramRepo.GetByID(req.PalmilhogramID)
	if err != nil || palmilhogram.PatientID != req.PatientID {
		return nil, models.ErrNotFound
	}
	insoleModel, err := s.insoleModelRepo.GetByID(req.InsoleModelID)
	if err != nil || !insoleModel.IsActive {
		return nil, models.ErrNotFound
	}
	coating, err := s.coatingRepo.GetByID(req.CoatingID)
	if err != nil || !coating.IsActive {
		return nil, models.ErrNotFound
	}

	prescription := &models.Prescription{
		PatientID:      req.PatientID,
		PrescriberID:   prescriberID,
		PalmilhogramID: req.PalmilhogramID,
		InsoleModelID:  req.InsoleModelID,
		CoatingID:      req.CoatingID,
		Status:         models.PrescriptionDraft,
		Notes:          req.Notes,
	}
	if err := s.prescriptionRepo.Create(prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}
	return prescription, nil
}

// Get retrieves a prescription created by the caller.
func (s *PrescriptionService) Get(prescriberID, id string) (*models.Prescription, error) {
	prescription, err := s.prescriptionRepo.GetByID(id)
	if err != nil || prescription.PrescriberID != prescriberID {
		return nil, models.ErrNotFound
	}
	return prescription, nil
}

// List lists prescriptions created by the caller.
func (s *PrescriptionService) List(prescriberID string, page, pageSize int) ([]models.Prescription, int64, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)
	return s.prescriptionRepo.GetByPrescriber(prescriberID, page, pageSize)
}
