package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderEventPublisher publishes order lifecycle events. Nil is accepted:
// checkout must not depend on the broker being up.
type OrderEventPublisher interface {
	PublishOrderEvent(event *models.OrderEvent) error
}

// OrderService owns checkout and the fulfillment status pipeline.
type OrderService struct {
	db       *gorm.DB
	shipping *ShippingService
	payments *PaymentService
	events   OrderEventPublisher
}

func NewOrderService(db *gorm.DB, shipping *ShippingService, payments *PaymentService, events OrderEventPublisher) *OrderService {
	return &OrderService{
		db:       db,
		shipping: shipping,
		payments: payments,
		events:   events,
	}
}

// Checkout creates the palmilhogram, the submitted prescription and the
// order as one unit: either the whole group of writes commits or none of it
// does. Coupon usage is counted inside the same transaction.
func (s *OrderService) Checkout(buyerID string, req *models.CheckoutRequest) (*models.Order, error) {
	patientRepo := repository.NewPatientRepository(s.db)
	patient, err := patientRepo.GetByOwnerAndID(buyerID, req.PatientID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	insoleModel, err := repository.NewInsoleModelRepository(s.db).GetByID(req.InsoleModelID)
	if err != nil || !insoleModel.IsActive {
		return nil, fmt.Errorf("insole model not available: %w", models.ErrNotFound)
	}
	coating, err := repository.NewCoatingRepository(s.db).GetByID(req.CoatingID)
	if err != nil || !coating.IsActive {
		return nil, fmt.Errorf("coating not available: %w", models.ErrNotFound)
	}

	subtotal := insoleModel.PriceCents + coating.PriceCents

	var coupon *models.Coupon
	var discount int64
	if req.CouponCode != "" {
		coupon, err = repository.NewCouponRepository(s.db).GetByCode(strings.ToUpper(req.CouponCode))
		if err != nil {
			return nil, models.ErrCouponInvalid
		}
		if !coupon.Usable(time.Now()) {
			if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
				return nil, models.ErrCouponExhausted
			}
			return nil, models.ErrCouponInvalid
		}
		discount = coupon.Discount(subtotal)
	}

	quote := s.shipping.Quote(req.PostalCode)
	total := subtotal - discount + quote.CostCents

	paymentRef, err := s.payments.Charge(buyerID, total)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	var order *models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		palmilhogram := palmilhogramFromInput(patient.ID, buyerID, &req.Palmilhogram)
		if err := repository.NewPalmilhogramRepository(tx).Create(palmilhogram); err != nil {
			return fmt.Errorf("failed to create palmilhogram: %w", err)
		}

		prescription := &models.Prescription{
			PatientID:      patient.ID,
			PrescriberID:   buyerID,
			PalmilhogramID: palmilhogram.ID,
			InsoleModelID:  insoleModel.ID,
			CoatingID:      coating.ID,
			Status:         models.PrescriptionSubmitted,
			Notes:          req.Notes,
		}
		if err := repository.NewPrescriptionRepository(tx).Create(prescription); err != nil {
			return fmt.Errorf("failed to create prescription: %w", err)
		}

		order = &models.Order{
			Number:             newOrderNumber(),
			PrescriptionID:     prescription.ID,
			BuyerID:            buyerID,
			Status:             models.OrderReceived,
			SubtotalCents:      subtotal,
			DiscountCents:      discount,
			ShippingCents:      quote.CostCents,
			TotalCents:         total,
			ShippingPostalCode: req.PostalCode,
			ShippingCarrier:    quote.Carrier,
			PaymentReference:   paymentRef,
		}
		if coupon != nil {
			order.CouponID = &coupon.ID
			if err := repository.NewCouponRepository(tx).IncrementUsage(coupon.ID); err != nil {
				return fmt.Errorf("failed to count coupon usage: %w", err)
			}
		}
		if err := repository.NewOrderRepository(tx).Create(order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(order)
	return order, nil
}

// GetByBuyer lists a physiotherapist's own orders.
func (s *OrderService) GetByBuyer(buyerID string, page, pageSize int) ([]models.Order, int64, error) {
	return repository.NewOrderRepository(s.db).GetByBuyer(buyerID, page, pageSize)
}

// GetAll lists every order, optionally filtered by status.
func (s *OrderService) GetAll(page, pageSize int, status string) ([]models.Order, int64, error) {
	return repository.NewOrderRepository(s.db).GetAll(page, pageSize, status)
}

// GetByID retrieves an order; non-admin, non-industry callers only see
// their own.
func (s *OrderService) GetByID(identity *models.Identity, orderID string) (*models.Order, error) {
	order, err := repository.NewOrderRepository(s.db).GetByID(orderID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if identity.Role == models.RolePhysiotherapist && order.BuyerID != identity.UserID {
		return nil, models.ErrNotFound
	}
	return order, nil
}

// UpdateStatus moves an order along the pipeline after validating the
// transition. Shipped and delivered stamps are set on the way through.
func (s *OrderService) UpdateStatus(identity *models.Identity, orderID string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	repo := repository.NewOrderRepository(s.db)
	order, err := repo.GetByID(orderID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	// Physiotherapists may only cancel their own orders; the production
	// statuses belong to industry and admin users.
	if identity.Role == models.RolePhysiotherapist {
		if order.BuyerID != identity.UserID || req.Status != models.OrderCancelled {
			return nil, models.ErrForbidden
		}
	}

	if !models.CanTransition(order.Status, req.Status) {
		return nil, models.ErrInvalidTransition
	}

	now := time.Now()
	order.Status = req.Status
	switch req.Status {
	case models.OrderShipped:
		order.ShippedAt = &now
		order.TrackingCode = req.TrackingCode
	case models.OrderDelivered:
		order.DeliveredAt = &now
	}

	if err := repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.publishEvent(order)
	return order, nil
}

func (s *OrderService) publishEvent(order *models.Order) {
	if s.events == nil {
		return
	}
	event := &models.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		BuyerID:     order.BuyerID,
		Status:      order.Status,
		OccurredAt:  time.Now(),
	}
	if err := s.events.PublishOrderEvent(event); err != nil {
		logrus.Warnf("Failed to publish order event for %s: %v", order.Number, err)
	}
}

func palmilhogramFromInput(patientID, assessorID string, in *models.PalmilhogramInput) *models.Palmilhogram {
	return &models.Palmilhogram{
		PatientID:          patientID,
		AssessorID:         assessorID,
		LeftArchIndex:      in.Left.ArchIndex,
		LeftFootLength:     in.Left.FootLength,
		LeftForefootWidth:  in.Left.ForefootWidth,
		LeftHeelWidth:      in.Left.HeelWidth,
		LeftNavicularDrop:  in.Left.NavicularDrop,
		LeftHalluxValgus:   in.Left.HalluxValgus,
		LeftCalcaneus:      in.Left.Calcaneus,
		RightArchIndex:     in.Right.ArchIndex,
		RightFootLength:    in.Right.FootLength,
		RightForefootWidth: in.Right.ForefootWidth,
		RightHeelWidth:     in.Right.HeelWidth,
		RightNavicularDrop: in.Right.NavicularDrop,
		RightHalluxValgus:  in.Right.HalluxValgus,
		RightCalcaneus:     in.Right.Calcaneus,
		PressureNotes:      in.PressureNotes,
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("PED-%s", strings.ToUpper(uuid.New().String()[:8]))
}
