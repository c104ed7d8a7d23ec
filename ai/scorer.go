package ai

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"wedlock-backend/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Fallback verdict when the model is unreachable or answers garbage. Matches
// are still shown, just without a real score.
const (
	FallbackScore  = 70
	FallbackReason = "Profiles look compatible based on basic details."
)

// Scorer rates how compatible a candidate is with the requesting member.
// Score is 0-100, reason is one short sentence for the card.
type Scorer interface {
	Score(ctx context.Context, me, candidate models.Profile) (int, string)
}

// GeminiScorer asks gemini-1.5-flash for a verdict in SCORE|REASON form.
// The underlying client is built on first use and shared across calls.
type GeminiScorer struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiScorer(apiKey string) *GeminiScorer {
	return &GeminiScorer{apiKey: apiKey, model: "gemini-1.5-flash"}
}

func (g *GeminiScorer) generativeClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == nil {
		client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
		if err != nil {
			return nil, err
		}
		g.client = client
	}
	return g.client, nil
}

func (g *GeminiScorer) Score(ctx context.Context, me, candidate models.Profile) (int, string) {
	if g.apiKey == "" {
		return FallbackScore, FallbackReason
	}

	client, err := g.generativeClient(ctx)
	if err != nil {
		log.Printf("gemini client init failed: %v", err)
		return FallbackScore, FallbackReason
	}

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(me, candidate)))
	if err != nil {
		log.Printf("gemini generate failed: %v", err)
		return FallbackScore, FallbackReason
	}

	return ParseVerdict(extractText(resp))
}

func buildPrompt(me, m models.Profile) string {
	return fmt.Sprintf(`Act as an Indian Matchmaker. Compare:
Me: %s, %dy, %s, Income: %s
Match: %s, %dy, %s, Income: %s

Output strictly as: SCORE|ONE_SHORT_REASON
Example: 85|Great career match but age gap is high.`,
		me.Job, me.Age, me.Religion, me.Income,
		m.Job, m.Age, m.Religion, m.Income)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// ParseVerdict parses "85|Great career match." into (85, reason). Anything
// malformed falls back to the neutral verdict. Scores are clamped to 0-100.
func ParseVerdict(text string) (int, string) {
	parts := strings.SplitN(strings.TrimSpace(text), "|", 2)
	if len(parts) != 2 {
		return FallbackScore, FallbackReason
	}

	score, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return FallbackScore, FallbackReason
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	reason := strings.TrimSpace(parts[1])
	if reason == "" {
		reason = FallbackReason
	}
	return score, reason
}
