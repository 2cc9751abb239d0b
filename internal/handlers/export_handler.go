package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/services/export"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	excelService *export.Service
}

func NewExportHandler(excelService *export.Service) *ExportHandler {
	return &ExportHandler{
		excelService: excelService,
	}
}

// Orders godoc
// @Summary Export orders as a spreadsheet
// @Description Download an xlsx report of orders created inside the date range
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD, default 30 days ago)"
// @Param to query string false "End date (YYYY-MM-DD, default today)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/export/orders [get]
func (h *ExportHandler) Orders(c *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		// inclusive end of day
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date range is inverted"})
		return
	}

	content, filename, err := h.excelService.OrdersReport(from, to)
	if err != nil {
		logrus.Errorf("Orders export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export orders"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
