// internal/service/recommendation_service.go
package service

import (
	"context"
	"math"

	"github.com/gdghack/stockwise/internal/advisor"
	"github.com/gdghack/stockwise/internal/cache"
	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/engine"
	"github.com/gdghack/stockwise/internal/repository"
	"github.com/gdghack/stockwise/internal/storage"
	"github.com/rs/zerolog/log"
)

// RecommendationService wires the engine to the repositories, the
// explanation advisor, the cache and the optional plan archive. The
// numeric result always comes back; advisor and archive failures degrade
// to a warning log.
type RecommendationService struct {
	items   repository.ItemRepository
	demand  repository.DemandRepository
	engine  *engine.Engine
	advisor advisor.Advisor
	cache   cache.RecommendationCache
	archive storage.PlanArchive
}

func NewRecommendationService(
	items repository.ItemRepository,
	demand repository.DemandRepository,
	eng *engine.Engine,
	adv advisor.Advisor,
	cacheImpl cache.RecommendationCache,
	archive storage.PlanArchive,
) *RecommendationService {
	if adv == nil {
		adv = advisor.NewStaticAdvisor()
	}
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRecommendationCache()
	}
	return &RecommendationService{
		items:   items,
		demand:  demand,
		engine:  eng,
		advisor: adv,
		cache:   cacheImpl,
		archive: archive,
	}
}

// RecommendStock produces the restocking recommendation for one item.
// sellingPrice > 0 overrides the stored price; a negative value is
// rejected. Unknown items surface domain.ErrItemNotFound.
func (s *RecommendationService) RecommendStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool) (domain.StockRecommendation, error) {
	if sellingPrice < 0 {
		return domain.StockRecommendation{}, domain.Invalid("sellingPrice", "must not be negative")
	}

	if rec, ok, err := s.cache.GetStock(ctx, itemID, sellingPrice, festival); err == nil && ok {
		return rec, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("recommendation cache get failed")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return domain.StockRecommendation{}, err
	}

	history, err := s.demand.History(ctx, itemID)
	if err != nil {
		return domain.StockRecommendation{}, err
	}

	rec := s.engine.RecommendStock(item, quantities(history), sellingPrice, festival)
	rec.Explanation = s.explainStock(ctx, rec)
	roundStockRecommendation(&rec)

	if err := s.cache.SetStock(ctx, itemID, sellingPrice, festival, rec); err != nil {
		log.Warn().Err(err).Msg("recommendation cache set failed")
	}

	return rec, nil
}

// RecommendCashPlan allocates the budget all-or-nothing: candidates whose
// full restock does not fit are skipped entirely.
func (s *RecommendationService) RecommendCashPlan(ctx context.Context, budget float64, festival bool) (domain.BudgetPlan, error) {
	return s.allocate(ctx, budget, festival, engine.StrategyAllOrNothing)
}

// OptimizeBudget allocates with partial fills: a candidate that does not
// fully fit gets as many units as the remaining budget covers.
func (s *RecommendationService) OptimizeBudget(ctx context.Context, budget float64, festival bool) (domain.BudgetPlan, error) {
	return s.allocate(ctx, budget, festival, engine.StrategyPartialFill)
}

func (s *RecommendationService) allocate(ctx context.Context, budget float64, festival bool, strategy engine.Strategy) (domain.BudgetPlan, error) {
	if plan, ok, err := s.cache.GetBudget(ctx, budget, festival, string(strategy)); err == nil && ok {
		return plan, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("recommendation cache get failed")
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return domain.BudgetPlan{}, err
	}

	inventory := make([]engine.ItemDemand, 0, len(items))
	for _, item := range items {
		history, err := s.demand.History(ctx, item.ID)
		if err != nil {
			return domain.BudgetPlan{}, err
		}
		inventory = append(inventory, engine.ItemDemand{Item: item, History: quantities(history)})
	}

	plan, err := s.engine.AllocateBudget(inventory, budget, festival, strategy)
	if err != nil {
		return domain.BudgetPlan{}, err
	}

	plan.Explanation = s.explainPlan(ctx, plan, budget)
	roundBudgetPlan(&plan)

	if err := s.cache.SetBudget(ctx, budget, festival, string(strategy), plan); err != nil {
		log.Warn().Err(err).Msg("recommendation cache set failed")
	}

	s.archivePlan(ctx, plan)
	return plan, nil
}

func (s *RecommendationService) explainStock(ctx context.Context, rec domain.StockRecommendation) string {
	text, err := s.advisor.ExplainStock(ctx, rec)
	if err != nil {
		log.Warn().Err(err).Str("item", rec.ItemName).Msg("explanation service unavailable, using fallback")
		return advisor.FallbackExplanation
	}
	return text
}

func (s *RecommendationService) explainPlan(ctx context.Context, plan domain.BudgetPlan, budget float64) string {
	text, err := s.advisor.ExplainPlan(ctx, plan, budget)
	if err != nil {
		log.Warn().Err(err).Msg("explanation service unavailable, using fallback")
		return advisor.FallbackExplanation
	}
	return text
}

func quantities(entries []domain.DemandEntry) []float64 {
	out := make([]float64, len(entries))
	for i, entry := range entries {
		out[i] = entry.Quantity
	}
	return out
}

// round2 keeps internal math at full precision and trims only what leaves
// the service.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundStockRecommendation(rec *domain.StockRecommendation) {
	rec.AvgDailyDemand = round2(rec.AvgDailyDemand)
	rec.EffectiveDemand = round2(rec.EffectiveDemand)
	rec.MarginPercent = round2(rec.MarginPercent)
	rec.ExpectedProfit = round2(rec.ExpectedProfit)
}

func roundBudgetPlan(plan *domain.BudgetPlan) {
	for i := range plan.Plan {
		plan.Plan[i].Cost = round2(plan.Plan[i].Cost)
		plan.Plan[i].PriorityScore = round2(plan.Plan[i].PriorityScore)
		plan.Plan[i].RemainingBudget = round2(plan.Plan[i].RemainingBudget)
	}
	plan.TotalCost = round2(plan.TotalCost)
	plan.RemainingBudget = round2(plan.RemainingBudget)
}
