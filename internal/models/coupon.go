package models

import (
	"time"
)

// Coupon discount kinds.
const (
	CouponPercent = "percent"
	CouponFixed   = "fixed"
)

// Coupon is an admin-managed discount code. Value is a percentage for
// percent coupons and an amount in cents for fixed ones.
type Coupon struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Code       string     `json:"code" gorm:"type:varchar(30);not null;unique;index"`
	Kind       string     `json:"kind" gorm:"type:varchar(10);not null"`
	Value      int64      `json:"value" gorm:"not null"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UsageLimit int        `json:"usage_limit" gorm:"default:0"` // 0 means unlimited
	UsedCount  int        `json:"used_count" gorm:"default:0"`
	IsActive   bool       `json:"is_active" gorm:"default:true;index"`
}

// TableName specifies the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// Usable reports whether the coupon can be applied at the given instant.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && !now.Before(*c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	return true
}

// Discount returns the discount in cents for a given subtotal. The result
// never exceeds the subtotal.
func (c *Coupon) Discount(subtotalCents int64) int64 {
	var d int64
	switch c.Kind {
	case CouponPercent:
		d = subtotalCents * c.Value / 100
	case CouponFixed:
		d = c.Value
	}
	if d > subtotalCents {
		d = subtotalCents
	}
	if d < 0 {
		d = 0
	}
	return d
}

// CouponRequest is the create/update payload for coupons.
type CouponRequest struct {
	Code       string     `json:"code" binding:"required"`
	Kind       string     `json:"kind" binding:"required,oneof=percent fixed"`
	Value      int64      `json:"value" binding:"required,min=1"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UsageLimit int        `json:"usage_limit,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
}
