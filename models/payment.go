package models

import "time"

// PaymentRecord verification statuses.
const (
	PaymentVerified = "verified"
	PaymentRejected = "rejected"
)

// PaymentRecord is an audit row written for every verification attempt,
// accepted or not.
type PaymentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `json:"phone"`
	OrderID   string    `json:"order_id"`
	PaymentID string    `json:"payment_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
