package handlers

import (
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	prescriptionService *services.PrescriptionService
}

func NewPrescriptionHandler(prescriptionService *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionService: prescriptionService,
	}
}

// Create godoc
// @Summary Create a draft prescription
// @Description Bind an existing assessment to an insole model and coating
// @Tags prescriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePrescriptionRequest true "Prescription data"
// @Success 201 {object} models.Prescription
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/prescriptions [post]
func (h *PrescriptionHandler) Create(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	prescription, err := h.prescriptionService.Create(identity.UserID, &req)
	if err != nil {
		respondDomainError(c, err, "Failed to create prescription")
		return
	}

	c.JSON(http.StatusCreated, prescription)
}

// List godoc
// @Summary List the caller's prescriptions
// @Tags prescriptions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/prescriptions [get]
func (h *PrescriptionHandler) List(c *gin.Context) {
	identity := middlewareIdentity(c)
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	prescriptions, total, err := h.prescriptionService.List(identity.UserID, page, pageSize)
	if err != nil {
		respondDomainError(c, err, "Failed to list prescriptions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prescriptions": prescriptions,
		"pagination":    utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// Get godoc
// @Summary Get a prescription
// @Tags prescriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prescription ID"
// @Success 200 {object} models.Prescription
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/prescriptions/{id} [get]
func (h *PrescriptionHandler) Get(c *gin.Context) {
	identity := middlewareIdentity(c)

	prescription, err := h.prescriptionService.Get(identity.UserID, c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "Failed to load prescription")
		return
	}

	c.JSON(http.StatusOK, prescription)
}
