package client

import (
	"fmt"

	"wedlock-backend/models"
)

// MatchCard is the view model for one feed entry, ready for any renderer.
type MatchCard struct {
	Initial    string
	Name       string
	Meta       string // "31 Yrs • Engineer • Hindu"
	ScoreLabel string // "87% Match"
	Reason     string
	Phone      string
}

// BuildCards maps the feed to view models in the order received; the server
// owns the ranking. Pure function, no rendering here.
func BuildCards(matches []models.MatchResult) []MatchCard {
	cards := make([]MatchCard, 0, len(matches))
	for _, m := range matches {
		cards = append(cards, MatchCard{
			Initial:    avatarInitial(m.Name),
			Name:       m.Name,
			Meta:       fmt.Sprintf("%d Yrs • %s • %s", m.Age, m.Job, m.Religion),
			ScoreLabel: fmt.Sprintf("%d%% Match", m.Score),
			Reason:     m.AIReason,
			Phone:      m.Phone,
		})
	}
	return cards
}

// avatarInitial guards the empty-name edge case the old DOM code crashed on.
func avatarInitial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}
