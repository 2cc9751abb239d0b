package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Service renders admin reports as Excel workbooks.
type Service struct {
	orderRepo *repository.OrderRepository
}

func NewExcelService(orderRepo *repository.OrderRepository) *Service {
	return &Service{orderRepo: orderRepo}
}

var orderColumns = []string{
	"number", "status", "patient", "insole_model", "buyer_id",
	"subtotal", "discount", "shipping", "total",
	"coupon_id", "tracking_code", "created_at",
}

// OrdersReport builds the orders workbook for the [from, to) window and
// returns the encoded file.
func (s *Service) OrdersReport(from, to time.Time) ([]byte, string, error) {
	orders, err := s.orderRepo.GetCreatedBetween(from, to)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load orders: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Orders"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	cancelledStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	shippedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
	})

	for i, col := range orderColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, order := range orders {
		row := rowIdx + 2
		couponID := ""
		if order.CouponID != nil {
			couponID = *order.CouponID
		}
		values := []interface{}{
			order.Number,
			order.Status,
			order.Prescription.Patient.Name,
			order.Prescription.InsoleModel.Name,
			order.BuyerID,
			centsToReais(order.SubtotalCents),
			centsToReais(order.DiscountCents),
			centsToReais(order.ShippingCents),
			centsToReais(order.TotalCents),
			couponID,
			order.TrackingCode,
			order.CreatedAt.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheet, cell, v)
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(orderColumns), row)
		switch order.Status {
		case models.OrderCancelled:
			f.SetCellStyle(sheet, first, last, cancelledStyle)
		case models.OrderShipped, models.OrderDelivered:
			f.SetCellStyle(sheet, first, last, shippedStyle)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to encode workbook: %w", err)
	}

	filename := fmt.Sprintf("orders_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func centsToReais(cents int64) float64 {
	return float64(cents) / 100
}
