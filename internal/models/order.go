package models

import (
	"time"
)

// Order statuses. Cancellation is allowed at any point before shipping.
const (
	OrderReceived     = "received"
	OrderInProduction = "in_production"
	OrderShipped      = "shipped"
	OrderDelivered    = "delivered"
	OrderCancelled    = "cancelled"
)

// OrderTransitions maps each status to the statuses it may move to.
var OrderTransitions = map[string][]string{
	OrderReceived:     {OrderInProduction, OrderCancelled},
	OrderInProduction: {OrderShipped, OrderCancelled},
	OrderShipped:      {OrderDelivered},
	OrderDelivered:    {},
	OrderCancelled:    {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range OrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is the fulfillment record created at checkout. Amounts are in
// cents to keep arithmetic exact.
type Order struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Number         string    `json:"number" gorm:"type:varchar(30);not null;unique;index"`
	PrescriptionID string    `json:"prescription_id" gorm:"not null;type:uuid;index"`
	BuyerID        string    `json:"buyer_id" gorm:"not null;type:uuid;index"`
	Status         string    `json:"status" gorm:"type:varchar(20);not null;default:received;index"`

	SubtotalCents int64  `json:"subtotal_cents" gorm:"not null"`
	DiscountCents int64  `json:"discount_cents" gorm:"not null;default:0"`
	ShippingCents int64  `json:"shipping_cents" gorm:"not null;default:0"`
	TotalCents    int64  `json:"total_cents" gorm:"not null"`
	CouponID      *string `json:"coupon_id,omitempty" gorm:"type:uuid"`

	ShippingPostalCode string     `json:"shipping_postal_code" gorm:"type:varchar(10)"`
	ShippingCarrier    string     `json:"shipping_carrier" gorm:"type:varchar(50)"`
	TrackingCode       string     `json:"tracking_code" gorm:"type:varchar(50)"`
	PaymentReference   string     `json:"payment_reference" gorm:"type:varchar(64)"`
	ShippedAt          *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	// Relationships
	Prescription Prescription `json:"prescription,omitempty" gorm:"foreignKey:PrescriptionID;references:ID"`
	Buyer        User         `json:"-" gorm:"foreignKey:BuyerID;references:ID"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// CheckoutRequest aggregates everything a physiotherapist submits in one
// step: the measurement, the prescription choices and the order details.
type CheckoutRequest struct {
	PatientID     string            `json:"patient_id" binding:"required"`
	Palmilhogram  PalmilhogramInput `json:"palmilhogram" binding:"required"`
	InsoleModelID string            `json:"insole_model_id" binding:"required"`
	CoatingID     string            `json:"coating_id" binding:"required"`
	Notes         string            `json:"notes,omitempty"`
	CouponCode    string            `json:"coupon_code,omitempty"`
	PostalCode    string            `json:"postal_code" binding:"required"`
}

// UpdateOrderStatusRequest moves an order along the fulfillment pipeline.
type UpdateOrderStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	TrackingCode string `json:"tracking_code,omitempty"`
}

// OrderEvent is the message published to the order-events queue whenever an
// order is created or changes status.
type OrderEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	BuyerID     string    `json:"buyer_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
