package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"received to in_production", OrderReceived, OrderInProduction, true},
		{"received to cancelled", OrderReceived, OrderCancelled, true},
		{"received cannot skip to shipped", OrderReceived, OrderShipped, false},
		{"in_production to shipped", OrderInProduction, OrderShipped, true},
		{"in_production to cancelled", OrderInProduction, OrderCancelled, true},
		{"shipped to delivered", OrderShipped, OrderDelivered, true},
		{"shipped cannot be cancelled", OrderShipped, OrderCancelled, false},
		{"delivered is terminal", OrderDelivered, OrderCancelled, false},
		{"cancelled is terminal", OrderCancelled, OrderInProduction, false},
		{"no backwards moves", OrderInProduction, OrderReceived, false},
		{"self transition rejected", OrderReceived, OrderReceived, false},
		{"unknown status", "lost", OrderDelivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}
