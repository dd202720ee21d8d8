package enums

import "fmt"

// PaymentSessionStatus tracks the pending-checkout lifecycle. Promotion is
// one-directional: initiated sessions may only move to completed.
type PaymentSessionStatus string

const (
	PaymentSessionInitiated PaymentSessionStatus = "initiated"
	PaymentSessionCompleted PaymentSessionStatus = "completed"
)

// String implements fmt.Stringer.
func (s PaymentSessionStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is recognized.
func (s PaymentSessionStatus) IsValid() bool {
	return s == PaymentSessionInitiated || s == PaymentSessionCompleted
}

// CanTransitionTo enforces the one-way promotion.
func (s PaymentSessionStatus) CanTransitionTo(next PaymentSessionStatus) bool {
	return s == PaymentSessionInitiated && next == PaymentSessionCompleted
}

// ParsePaymentSessionStatus converts a raw string into a status.
func ParsePaymentSessionStatus(value string) (PaymentSessionStatus, error) {
	switch PaymentSessionStatus(value) {
	case PaymentSessionInitiated:
		return PaymentSessionInitiated, nil
	case PaymentSessionCompleted:
		return PaymentSessionCompleted, nil
	}
	return "", fmt.Errorf("invalid payment session status %q", value)
}
