package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PaymentService authorizes checkout charges. The current gateway is a
// stub that approves every charge and returns a generated reference;
// swapping in a real acquirer only touches this type.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// Charge authorizes a payment and returns the gateway reference.
func (s *PaymentService) Charge(buyerID string, amountCents int64) (string, error) {
	if amountCents < 0 {
		return "", fmt.Errorf("invalid charge amount: %d", amountCents)
	}
	ref := fmt.Sprintf("pay_%s", uuid.New().String())
	logrus.Infof("Payment approved for buyer %s: %d cents (ref %s)", buyerID, amountCents, ref)
	return ref, nil
}
