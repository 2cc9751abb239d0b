package handlers

import (
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves coatings, insole models and coupons. Writes are
// admin-only; reads are open to any authenticated role so physiotherapists
// can browse while prescribing.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// activeOnly hides disabled catalog entries from everyone except admins.
func activeOnly(c *gin.Context) bool {
	return middlewareIdentity(c).Role != models.RoleAdmin
}

// CreateCoating godoc
// @Summary Create a coating
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CoatingRequest true "Coating data"
// @Success 201 {object} models.Coating
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/catalog/coatings [post]
func (h *CatalogHandler) CreateCoating(c *gin.Context) {
	var req models.CoatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	coating, err := h.catalogService.CreateCoating(&req)
	if err != nil {
		respondDomainError(c, err, "Failed to create coating")
		return
	}

	c.JSON(http.StatusCreated, coating)
}

// ListCoatings godoc
// @Summary List coatings
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/catalog/coatings [get]
func (h *CatalogHandler) ListCoatings(c *gin.Context) {
	coatings, err := h.catalogService.ListCoatings(activeOnly(c))
	if err != nil {
		respondDomainError(c, err, "Failed to list coatings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"coatings": coatings})
}

// UpdateCoating godoc
// @Summary Update a coating
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coating ID"
// @Param request body models.CoatingRequest true "Coating data"
// @Success 200 {object} models.Coating
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/catalog/coatings/{id} [put]
func (h *CatalogHandler) UpdateCoating(c *gin.Context) {
	var req models.CoatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	coating, err := h.catalogService.UpdateCoating(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to update coating")
		return
	}

	c.JSON(http.StatusOK, coating)
}

// DeleteCoating godoc
// @Summary Delete a coating
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coating ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/catalog/coatings/{id} [delete]
func (h *CatalogHandler) DeleteCoating(c *gin.Context) {
	if err := h.catalogService.DeleteCoating(c.Param("id")); err != nil {
		respondDomainError(c, err, "Failed to delete coating")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coating deleted"})
}

// CreateInsoleModel godoc
// @Summary Create an insole model
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.InsoleModelRequest true "Insole model data"
// @Success 201 {object} models.InsoleModel
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/catalog/insole-models [post]
func (h *CatalogHandler) CreateInsoleModel(c *gin.Context) {
	var req models.InsoleModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	model, err := h.catalogService.CreateInsoleModel(&req)
	if err != nil {
		respondDomainError(c, err, "Failed to create insole model")
		return
	}

	c.JSON(http.StatusCreated, model)
}

// ListInsoleModels godoc
// @Summary List insole models
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/catalog/insole-models [get]
func (h *CatalogHandler) ListInsoleModels(c *gin.Context) {
	insoleModels, err := h.catalogService.ListInsoleModels(activeOnly(c))
	if err != nil {
		respondDomainError(c, err, "Failed to list insole models")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insole_models": insoleModels})
}

// UpdateInsoleModel godoc
// @Summary Update an insole model
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Insole model ID"
// @Param request body models.InsoleModelRequest true "Insole model data"
// @Success 200 {object} models.InsoleModel
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/catalog/insole-models/{id} [put]
func (h *CatalogHandler) UpdateInsoleModel(c *gin.Context) {
	var req models.InsoleModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	model, err := h.catalogService.UpdateInsoleModel(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to update insole model")
		return
	}

	c.JSON(http.StatusOK, model)
}

// DeleteInsoleModel godoc
// @Summary Delete an insole model
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Insole model ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/catalog/insole-models/{id} [delete]
func (h *CatalogHandler) DeleteInsoleModel(c *gin.Context) {
	if err := h.catalogService.DeleteInsoleModel(c.Param("id")); err != nil {
		respondDomainError(c, err, "Failed to delete insole model")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Insole model deleted"})
}

// CreateCoupon godoc
// @Summary Create a coupon
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CouponRequest true "Coupon data"
// @Success 201 {object} models.Coupon
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/catalog/coupons [post]
func (h *CatalogHandler) CreateCoupon(c *gin.Context) {
	var req models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	coupon, err := h.catalogService.CreateCoupon(&req)
	if err != nil {
		respondDomainError(c, err, "Failed to create coupon")
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

// ListCoupons godoc
// @Summary List coupons
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/catalog/coupons [get]
func (h *CatalogHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.catalogService.ListCoupons()
	if err != nil {
		respondDomainError(c, err, "Failed to list coupons")
		return
	}

	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

// UpdateCoupon godoc
// @Summary Update a coupon
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body models.CouponRequest true "Coupon data"
// @Success 200 {object} models.Coupon
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/catalog/coupons/{id} [put]
func (h *CatalogHandler) UpdateCoupon(c *gin.Context) {
	var req models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	coupon, err := h.catalogService.UpdateCoupon(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to update coupon")
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// DeleteCoupon godoc
// @Summary Delete a coupon
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/catalog/coupons/{id} [delete]
func (h *CatalogHandler) DeleteCoupon(c *gin.Context) {
	if err := h.catalogService.DeleteCoupon(c.Param("id")); err != nil {
		respondDomainError(c, err, "Failed to delete coupon")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
