package payments

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	rputils "github.com/razorpay/razorpay-go/utils"
)

// Order is the subset of a gateway order the client needs to open checkout.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Gateway creates payment orders and checks completion signatures.
type Gateway interface {
	CreateOrder(receipt string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// RazorpayGateway is the production Gateway. Amount is in paise, currency INR.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
	amount int64
}

func NewRazorpayGateway(keyID, keySecret string, amount int64) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
		amount: amount,
	}
}

func (g *RazorpayGateway) CreateOrder(receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   g.amount,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay order create: response missing id")
	}

	order := &Order{ID: id, Amount: g.amount, Currency: "INR"}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	return order, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return rputils.VerifyPaymentSignature(params, signature, g.secret)
}
