package ai

import (
	"context"
	"testing"

	"wedlock-backend/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		score  int
		reason string
	}{
		{"well formed", "85|Great career match but age gap is high.", 85, "Great career match but age gap is high."},
		{"padded", "  92 |  Strong cultural alignment  ", 92, "Strong cultural alignment"},
		{"reason contains pipe", "60|Good fit | needs discussion", 60, "Good fit | needs discussion"},
		{"clamped high", "150|Too enthusiastic", 100, "Too enthusiastic"},
		{"clamped low", "-5|Model went negative", 0, "Model went negative"},
		{"no separator", "pretty good match", FallbackScore, FallbackReason},
		{"non-numeric score", "high|Looks great", FallbackScore, FallbackReason},
		{"empty reason", "80|", 80, FallbackReason},
		{"empty input", "", FallbackScore, FallbackReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reason := ParseVerdict(tt.text)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestGeminiScorerReusesClient(t *testing.T) {
	g := NewGeminiScorer("test-key")
	seeded := &genai.Client{}
	g.client = seeded

	client, err := g.generativeClient(context.Background())
	require.NoError(t, err)
	assert.Same(t, seeded, client, "one client serves every scoring call")
}

func TestGeminiScorerWithoutKeyFallsBack(t *testing.T) {
	me := models.Profile{Name: "Asha", Age: 29, Religion: "Hindu", Job: "Doctor"}
	cand := models.Profile{Name: "Raj", Age: 31, Religion: "Hindu", Job: "Engineer"}

	g := NewGeminiScorer("")
	score, reason := g.Score(context.Background(), me, cand)
	assert.Equal(t, FallbackScore, score)
	assert.Equal(t, FallbackReason, reason)
}
