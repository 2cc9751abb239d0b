package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingService_Quote(t *testing.T) {
	s := NewShippingService()

	tests := []struct {
		name       string
		postalCode string
		wantCents  int64
		wantDays   int
	}{
		{"sao paulo capital", "01310-100", 1890, 4},
		{"rio de janeiro", "20040-020", 2290, 6},
		{"rio grande do sul", "90010-150", 2390, 6},
		{"dash stripped before lookup", "01310100", 1890, 4},
		{"leading whitespace", " 80010-000", 2190, 5},
		{"empty code falls back", "", 2990, 10},
		{"malformed code falls back", "abc", 2990, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := s.Quote(tt.postalCode)
			assert.Equal(t, tt.wantCents, quote.CostCents)
			assert.Equal(t, tt.wantDays, quote.Days)
			assert.NotEmpty(t, quote.Carrier)
		})
	}
}
