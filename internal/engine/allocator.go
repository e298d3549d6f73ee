package engine

import (
	"math"
	"sort"

	"github.com/gdghack/stockwise/internal/domain"
)

// Strategy names how the allocator treats a candidate whose full restock
// cost exceeds the remaining budget.
type Strategy string

const (
	// StrategyAllOrNothing skips any candidate it cannot fully fund.
	// Backs the cash-recommend entry point.
	StrategyAllOrNothing Strategy = "all_or_nothing"

	// StrategyPartialFill buys as many units as the remaining budget
	// covers, capped at the needed quantity. Backs the optimize-budget
	// entry point.
	StrategyPartialFill Strategy = "partial_fill"
)

// ItemDemand pairs an item with its weekly demand history snapshot.
type ItemDemand struct {
	Item    domain.Item
	History []float64
}

type candidate struct {
	item     domain.Item
	need     int
	trending bool
	score    float64
}

// AllocateBudget greedily spends a cash budget across under-stocked items,
// most urgent first. Margin is deliberately left out of this path: the
// budget endpoints rank by restocking urgency alone, and the selling price
// may not even be known here. An empty plan is a valid outcome, not an
// error.
func (e *Engine) AllocateBudget(inventory []ItemDemand, budget float64, festival bool, strategy Strategy) (domain.BudgetPlan, error) {
	if budget <= 0 {
		return domain.BudgetPlan{}, domain.Invalid("budget", "must be greater than zero")
	}

	// 1. Candidates: items with demand signal that need restocking
	candidates := make([]candidate, 0, len(inventory))
	for _, entry := range inventory {
		avgDaily := e.AverageDailyDemand(entry.History)
		if avgDaily == 0 {
			continue
		}

		trending := e.HasIncreasingTrend(entry.History)
		effective := e.EffectiveDailyDemand(avgDaily, trending, 0, festival)

		recommended := int(math.Ceil(effective * float64(e.cfg.BufferDays)))
		need := recommended - entry.Item.Stock
		if need <= 0 {
			continue
		}

		// 2. Priority score: days of effective demand at stake, weighted
		// up for momentum and festival periods
		score := effective * float64(e.cfg.BufferDays)
		if trending {
			score *= e.cfg.PriorityTrendMul
		}
		if festival {
			score *= e.cfg.PriorityFestMul
		}

		candidates = append(candidates, candidate{
			item:     entry.Item,
			need:     need,
			trending: trending,
			score:    score,
		})
	}

	// 3. Greedy fill, highest score first; stable sort keeps the original
	// item order on ties
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	plan := domain.BudgetPlan{
		Strategy:        string(strategy),
		Plan:            []domain.PlanLine{},
		RemainingBudget: budget,
		IsFestival:      festival,
	}

	for _, c := range candidates {
		qty := c.need
		cost := float64(qty) * c.item.CostPrice

		if cost > plan.RemainingBudget {
			if strategy != StrategyPartialFill || c.item.CostPrice <= 0 {
				continue
			}
			qty = int(math.Floor(plan.RemainingBudget / c.item.CostPrice))
			if qty <= 0 {
				continue
			}
			if qty > c.need {
				qty = c.need
			}
			cost = float64(qty) * c.item.CostPrice
		}

		plan.RemainingBudget -= cost
		plan.TotalCost += cost
		plan.Plan = append(plan.Plan, domain.PlanLine{
			ItemID:          c.item.ID,
			Name:            c.item.Name,
			Quantity:        qty,
			Cost:            cost,
			PriorityScore:   c.score,
			RemainingBudget: plan.RemainingBudget,
		})
	}

	return plan, nil
}
