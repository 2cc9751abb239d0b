package handlers

import (
	"net/http"

	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves checkout and the fulfillment pipeline.
type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Checkout godoc
// @Summary Checkout an insole order
// @Description Create the assessment, prescription and order in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Checkout data"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	order, err := h.orderService.Checkout(identity.UserID, &req)
	if err != nil {
		respondDomainError(c, err, "Failed to checkout order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListMine godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	identity := middlewareIdentity(c)
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	orders, total, err := h.orderService.GetByBuyer(identity.UserID, page, pageSize)
	if err != nil {
		respondDomainError(c, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// ListAll godoc
// @Summary List every order
// @Description Admin and industry view of the full pipeline, filterable by status
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/orders/all [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	orders, total, err := h.orderService.GetAll(page, pageSize, c.Query("status"))
	if err != nil {
		respondDomainError(c, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// Get godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	identity := middlewareIdentity(c)

	order, err := h.orderService.GetByID(identity, c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "Failed to load order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateStatus godoc
// @Summary Move an order along the pipeline
// @Description Industry and admin advance orders; physiotherapists may only cancel their own before shipping
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "Status request"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	identity := middlewareIdentity(c)

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
		return
	}

	order, err := h.orderService.UpdateStatus(identity, c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, order)
}
