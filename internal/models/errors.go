package models

import (
	"errors"
)

// Domain errors surfaced by services. Handlers map them to HTTP statuses;
// anything not listed here becomes a generic 500 with no internal detail.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountInactive is returned only after the password verified.
	ErrAccountInactive = errors.New("account is deactivated")
	// ErrInvalidToken covers not-found, revoked, expired, malformed and
	// wrong-purpose tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the caller's role is not allowed.
	ErrForbidden = errors.New("forbidden")

	ErrEmailTaken    = errors.New("email already registered")
	ErrDocumentTaken = errors.New("document already registered")
	ErrNotFound      = errors.New("record not found")

	ErrCouponInvalid     = errors.New("coupon is invalid or expired")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
