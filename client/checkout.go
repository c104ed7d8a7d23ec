package client

import (
	"errors"

	"wedlock-backend/payments"
)

// ErrCheckoutDismissed reports that the user closed the checkout without
// paying. The payment flow turns it into a visible "cancelled" notice
// instead of ending silently.
var ErrCheckoutDismissed = errors.New("checkout dismissed")

// Proof is the completion evidence the checkout hands back. The client never
// inspects it; it goes to the backend verbatim for verification.
type Proof struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Checkout adapts whatever payment widget is in use (Razorpay's hosted
// checkout in production, a fake in tests) to a blocking two-phase call:
// open with an order, return proof or an error.
type Checkout interface {
	Open(order *payments.Order) (Proof, error)
}
