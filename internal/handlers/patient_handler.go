package handlers

import (
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler serves the physiotherapist's patient records and their foot
// assessments.
type PatientHandler struct {
	patientService *services.PatientService
}

func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// Create godoc
// @Summary Create a patient record
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePatientRequest true "Patient data"
// @Success 201 {object} models.Patient
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/patients [post]
func (h *PatientHandler) Create(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	patient, err := h.patientService.Create(identity.UserID, &req)
	if err != nil {
		respondDomainError(c, err, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// List godoc
// @Summary List patients
// @Description Physiotherapists see their own patients; admins see every patient
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name or document search"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/patients [get]
func (h *PatientHandler) List(c *gin.Context) {
	identity := middlewareIdentity(c)
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	var (
		patients []models.Patient
		total    int64
		err      error
	)
	if identity.Role == models.RoleAdmin {
		patients, total, err = h.patientService.ListAll(page, pageSize, c.Query("search"))
	} else {
		patients, total, err = h.patientService.List(identity.UserID, page, pageSize, c.Query("search"))
	}
	if err != nil {
		respondDomainError(c, err, "Failed to list patients")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patients":   patients,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// Get godoc
// @Summary Get a patient record
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} models.Patient
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/patients/{id} [get]
func (h *PatientHandler) Get(c *gin.Context) {
	identity := middlewareIdentity(c)

	patient, err := h.patientService.Get(identity.UserID, c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "Failed to load patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Update godoc
// @Summary Update a patient record
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Param request body models.UpdatePatientRequest true "Fields to update"
// @Success 200 {object} models.Patient
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/patients/{id} [put]
func (h *PatientHandler) Update(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	patient, err := h.patientService.Update(identity.UserID, c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to update patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Delete godoc
// @Summary Delete a patient record
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/patients/{id} [delete]
func (h *PatientHandler) Delete(c *gin.Context) {
	identity := middlewareIdentity(c)

	if err := h.patientService.Delete(identity.UserID, c.Param("id")); err != nil {
		respondDomainError(c, err, "Failed to delete patient")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}

// CreatePalmilhogram godoc
// @Summary Record a foot assessment
// @Description Store a palmilhogram (per-foot measurement map) for a patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Param request body models.CreatePalmilhogramRequest true "Assessment data"
// @Success 201 {object} models.Palmilhogram
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/patients/{id}/palmilhograms [post]
func (h *PatientHandler) CreatePalmilhogram(c *gin.Context) {
	identity := middlewareIdentity(c)

	var input models.PalmilhogramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	req := models.CreatePalmilhogramRequest{
		PatientID:         c.Param("id"),
		PalmilhogramInput: input,
	}
	palmilhogram, err := h.patientService.CreatePalmilhogram(identity.UserID, &req)
	if err != nil {
		respondDomainError(c, err, "Failed to record assessment")
		return
	}

	c.JSON(http.StatusCreated, palmilhogram)
}

// ListPalmilhograms godoc
// @Summary List a patient's foot assessments
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/patients/{id}/palmilhograms [get]
func (h *PatientHandler) ListPalmilhograms(c *gin.Context) {
	identity := middlewareIdentity(c)

	palmilhograms, err := h.patientService.ListPalmilhograms(identity.UserID, c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "Failed to list assessments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"palmilhograms": palmilhograms})
}
