package models

import "time"

// Account tiers. GOLD unlocks contact numbers in the match feed and is only
// ever set by a verified payment.
const (
	TierFree = "FREE"
	TierGold = "GOLD"
)

// Profile is one registered member, keyed by phone number.
type Profile struct {
	Phone     string    `gorm:"primaryKey" json:"phone"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Religion  string    `json:"religion"`
	Job       string    `json:"job"`
	Income    string    `json:"income"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}
