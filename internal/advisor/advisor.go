// Package advisor turns computed recommendation numbers into a short
// natural-language explanation via an external generative-text service.
// The numeric path never depends on it: callers treat any failure here as
// recoverable and fall back to FallbackExplanation.
package advisor

import (
	"context"

	"github.com/gdghack/stockwise/internal/domain"
)

// FallbackExplanation is returned to the caller whenever the external
// service is unavailable or times out.
const FallbackExplanation = "AI explanation is currently unavailable. The numbers above were computed from your recorded demand history."

type Advisor interface {
	ExplainStock(ctx context.Context, rec domain.StockRecommendation) (string, error)
	ExplainPlan(ctx context.Context, plan domain.BudgetPlan, budget float64) (string, error)
}

// StaticAdvisor answers with the fallback text. Used when no API key is
// configured and as a stand-in for tests.
type StaticAdvisor struct{}

var _ Advisor = (*StaticAdvisor)(nil)

func NewStaticAdvisor() *StaticAdvisor {
	return &StaticAdvisor{}
}

func (s *StaticAdvisor) ExplainStock(ctx context.Context, rec domain.StockRecommendation) (string, error) {
	return FallbackExplanation, nil
}

func (s *StaticAdvisor) ExplainPlan(ctx context.Context, plan domain.BudgetPlan, budget float64) (string, error) {
	return FallbackExplanation, nil
}
