package handlers

import (
	"net/http"
	"strconv"

	"github.com/stepwise-saude/insole-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats godoc
// @Summary Operational dashboard
// @Description Order counts per status, revenue, top models and new patients for the period
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param period_days query int false "Aggregation window in days (default 30)"
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	periodDays := 30
	if raw := c.Query("period_days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			periodDays = parsed
		}
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), periodDays)
	if err != nil {
		respondDomainError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, stats)
}
