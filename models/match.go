package models

// MatchResult is one scored candidate in the feed. Phone is masked by the
// server for FREE callers; the client renders whatever it gets.
type MatchResult struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Religion string `json:"religion"`
	Job      string `json:"job"`
	Income   string `json:"income"`
	Phone    string `json:"phone"`
	Score    int    `json:"score"`
	AIReason string `json:"ai_reason"`
}
