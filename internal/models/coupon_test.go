package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Usable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		usable bool
	}{
		{"active without limits", Coupon{IsActive: true}, true},
		{"inactive", Coupon{IsActive: false}, false},
		{"expired", Coupon{IsActive: true, ExpiresAt: &past}, false},
		{"expiry equal to now counts as expired", Coupon{IsActive: true, ExpiresAt: &now}, false},
		{"not yet expired", Coupon{IsActive: true, ExpiresAt: &future}, true},
		{"usage limit reached", Coupon{IsActive: true, UsageLimit: 5, UsedCount: 5}, false},
		{"usage below limit", Coupon{IsActive: true, UsageLimit: 5, UsedCount: 4}, true},
		{"zero limit means unlimited", Coupon{IsActive: true, UsageLimit: 0, UsedCount: 1000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.coupon.Usable(now))
		})
	}
}

func TestCoupon_Discount(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		subtotal int64
		want     int64
	}{
		{"ten percent", Coupon{Kind: CouponPercent, Value: 10}, 20000, 2000},
		{"hundred percent", Coupon{Kind: CouponPercent, Value: 100}, 20000, 20000},
		{"fixed amount", Coupon{Kind: CouponFixed, Value: 1500}, 20000, 1500},
		{"fixed amount capped at subtotal", Coupon{Kind: CouponFixed, Value: 50000}, 20000, 20000},
		{"unknown kind discounts nothing", Coupon{Kind: "mystery", Value: 10}, 20000, 0},
		{"zero subtotal", Coupon{Kind: CouponPercent, Value: 10}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.Discount(tt.subtotal))
		})
	}
}
