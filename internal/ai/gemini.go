package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor implements Advisor using Google's Gemini models.
type GeminiAdvisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAdvisor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiAdvisor(ctx context.Context, apiKey string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.4)

	return &GeminiAdvisor{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (a *GeminiAdvisor) Close() {
	a.client.Close()
}

// Explain generates a two-sentence note telling the renter why the top pick
// fits their trip.
func (a *GeminiAdvisor) Explain(ctx context.Context, s Summary) (string, error) {
	prompt := buildPrompt(s)

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// buildPrompt constructs the instructions for the AI.
func buildPrompt(s Summary) string {
	return fmt.Sprintf(`Role: You are a rental-car advisor writing for the renter.
We recommended the "%s" for their trip.
Trip facts:
- Trip risk score: %.1f out of 100
- Highway share of the route: %.0f%%
- Steepest slope along the route: %.3f
- Renter's stated priority: %s

Write at most two plain sentences explaining why this car suits the trip.
Do not mention the numeric scores directly; translate them into plain language.
No markdown, no greetings.`,
		s.TopVehicle, s.RiskScore, s.HighwayPercent, s.MaxSlope, s.Preference)
}
