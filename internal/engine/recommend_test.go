package engine

import (
	"testing"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendStock_ReferenceScenario(t *testing.T) {
	// cost 50, sell 100, stock 2, four weeks of rising demand, no festival:
	// avg daily = 52/4/7, margin 0.5 -> high tier, trend detected, so
	// effective = avg * 1.15 * 1.15 and a 14-day buffer gives 35 units.
	e := newTestEngine()
	item := domain.Item{ID: 101, Name: "Keyboard", Stock: 2, CostPrice: 50}

	rec := e.RecommendStock(item, []float64{10, 12, 14, 16}, 100, false)

	assert.True(t, rec.HasIncreasingTrend)
	assert.InDelta(t, 1.857, rec.AvgDailyDemand, 0.001)
	assert.InDelta(t, 0.5, rec.MarginPercent, 1e-9)
	assert.InDelta(t, 2.455, rec.EffectiveDemand, 0.001)
	assert.Equal(t, 35, rec.RecommendedStock)
	assert.Equal(t, 33, rec.BuyQuantity)
	assert.True(t, rec.ShouldBuy)
	assert.InDelta(t, 33*50.0, rec.ExpectedProfit, 1e-9)
}

func TestRecommendStock_AlreadyStocked(t *testing.T) {
	e := newTestEngine()
	item := domain.Item{ID: 7, Name: "Monitor", Stock: 500, CostPrice: 200}

	rec := e.RecommendStock(item, []float64{5, 5, 5, 5}, 250, false)

	assert.Equal(t, 0, rec.BuyQuantity)
	assert.False(t, rec.ShouldBuy)
	assert.Equal(t, 0.0, rec.ExpectedProfit)
	assert.GreaterOrEqual(t, rec.RecommendedStock, 0)
}

func TestRecommendStock_EmptyHistory(t *testing.T) {
	e := newTestEngine()
	item := domain.Item{ID: 3, Name: "Cable", Stock: 0, CostPrice: 5}

	rec := e.RecommendStock(item, nil, 10, true)

	assert.Equal(t, 0.0, rec.AvgDailyDemand)
	assert.Equal(t, 0, rec.RecommendedStock)
	assert.False(t, rec.ShouldBuy)
}

func TestRecommendStock_SellingPriceOverride(t *testing.T) {
	e := newTestEngine()
	item := domain.Item{ID: 9, Name: "Mouse", Stock: 0, CostPrice: 50, SellingPrice: 60}

	stored := e.RecommendStock(item, []float64{10, 10, 10}, 0, false)
	overridden := e.RecommendStock(item, []float64{10, 10, 10}, 100, false)

	// Stored price: margin 1/6, below the mid tier. Override to 100:
	// margin 0.5, high tier boost kicks in.
	assert.InDelta(t, 1.0/6.0, stored.MarginPercent, 1e-9)
	assert.InDelta(t, 0.5, overridden.MarginPercent, 1e-9)
	assert.Greater(t, overridden.RecommendedStock, stored.RecommendedStock)
}

func TestRecommendStock_NegativeMarginProfit(t *testing.T) {
	e := newTestEngine()
	item := domain.Item{ID: 4, Name: "Clearance", Stock: 0, CostPrice: 100}

	rec := e.RecommendStock(item, []float64{10, 10, 10, 10}, 80, false)

	require.True(t, rec.ShouldBuy)
	// Expected profit is not clamped at zero.
	assert.Less(t, rec.ExpectedProfit, 0.0)
	assert.InDelta(t, float64(rec.BuyQuantity)*-20.0, rec.ExpectedProfit, 1e-9)
}
