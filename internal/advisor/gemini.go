package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdghack/stockwise/internal/config"
	"github.com/gdghack/stockwise/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor asks a Gemini model for explanation text. One best-effort
// attempt per request with a bounded timeout; no retries.
type GeminiAdvisor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ Advisor = (*GeminiAdvisor)(nil)

func NewGeminiAdvisor(ctx context.Context, cfg config.AdvisorConfig) (*GeminiAdvisor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &GeminiAdvisor{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

func (g *GeminiAdvisor) Close() error {
	return g.client.Close()
}

func (g *GeminiAdvisor) ExplainStock(ctx context.Context, rec domain.StockRecommendation) (string, error) {
	return g.generate(ctx, StockPrompt(rec))
}

func (g *GeminiAdvisor) ExplainPlan(ctx context.Context, plan domain.BudgetPlan, budget float64) (string, error) {
	return g.generate(ctx, PlanPrompt(plan, budget))
}

func (g *GeminiAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text candidates")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
