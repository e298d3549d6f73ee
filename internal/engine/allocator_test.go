package engine

import (
	"testing"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatHistory(weekly float64, weeks int) []float64 {
	h := make([]float64, weeks)
	for i := range h {
		h[i] = weekly
	}
	return h
}

func TestAllocateBudget_InvalidBudget(t *testing.T) {
	e := newTestEngine()

	for _, budget := range []float64{0, -1, -1000} {
		_, err := e.AllocateBudget(nil, budget, false, StrategyAllOrNothing)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	}
}

func TestAllocateBudget_NoCandidatesIsEmptyPlan(t *testing.T) {
	e := newTestEngine()

	inventory := []ItemDemand{
		// no demand signal
		{Item: domain.Item{ID: 1, Name: "Dormant", Stock: 0, CostPrice: 10}, History: nil},
		// already stocked past the horizon
		{Item: domain.Item{ID: 2, Name: "Full", Stock: 1000, CostPrice: 10}, History: flatHistory(7, 4)},
	}

	plan, err := e.AllocateBudget(inventory, 500, false, StrategyAllOrNothing)
	require.NoError(t, err)
	assert.Empty(t, plan.Plan)
	assert.Equal(t, 0.0, plan.TotalCost)
	assert.Equal(t, 500.0, plan.RemainingBudget)
}

func TestAllocateBudget_NeverExceedsBudget(t *testing.T) {
	e := newTestEngine()

	inventory := []ItemDemand{
		{Item: domain.Item{ID: 1, Name: "A", Stock: 0, CostPrice: 17}, History: flatHistory(21, 4)},
		{Item: domain.Item{ID: 2, Name: "B", Stock: 0, CostPrice: 23}, History: flatHistory(14, 4)},
		{Item: domain.Item{ID: 3, Name: "C", Stock: 0, CostPrice: 5}, History: flatHistory(7, 4)},
	}

	for _, strategy := range []Strategy{StrategyAllOrNothing, StrategyPartialFill} {
		plan, err := e.AllocateBudget(inventory, 300, true, strategy)
		require.NoError(t, err)
		assert.LessOrEqual(t, plan.TotalCost, 300.0)
		assert.InDelta(t, 300.0-plan.TotalCost, plan.RemainingBudget, 1e-9)
	}
}

func TestAllocateBudget_OrderedByPriority(t *testing.T) {
	e := newTestEngine()

	inventory := []ItemDemand{
		{Item: domain.Item{ID: 1, Name: "Slow", Stock: 0, CostPrice: 1}, History: flatHistory(7, 4)},
		{Item: domain.Item{ID: 2, Name: "Fast", Stock: 0, CostPrice: 1}, History: flatHistory(28, 4)},
		{Item: domain.Item{ID: 3, Name: "Rising", Stock: 0, CostPrice: 1}, History: []float64{10, 12, 14, 16}},
	}

	plan, err := e.AllocateBudget(inventory, 10000, false, StrategyAllOrNothing)
	require.NoError(t, err)
	require.Len(t, plan.Plan, 3)

	for i := 1; i < len(plan.Plan); i++ {
		assert.GreaterOrEqual(t, plan.Plan[i-1].PriorityScore, plan.Plan[i].PriorityScore)
	}
	// The highest weekly rate wins the top slot
	assert.Equal(t, "Fast", plan.Plan[0].Name)
}

func TestAllocateBudget_TrendRaisesPriority(t *testing.T) {
	e := newTestEngine()

	// Same average weekly demand, but one item has momentum.
	inventory := []ItemDemand{
		{Item: domain.Item{ID: 1, Name: "Flat", Stock: 0, CostPrice: 1}, History: flatHistory(13, 4)},
		{Item: domain.Item{ID: 2, Name: "Rising", Stock: 0, CostPrice: 1}, History: []float64{10, 12, 14, 16}},
	}

	plan, err := e.AllocateBudget(inventory, 10000, false, StrategyAllOrNothing)
	require.NoError(t, err)
	require.Len(t, plan.Plan, 2)
	assert.Equal(t, "Rising", plan.Plan[0].Name)
}

func TestAllocateBudget_StableTieBreak(t *testing.T) {
	e := newTestEngine()

	inventory := []ItemDemand{
		{Item: domain.Item{ID: 1, Name: "First", Stock: 0, CostPrice: 2}, History: flatHistory(7, 4)},
		{Item: domain.Item{ID: 2, Name: "Second", Stock: 0, CostPrice: 2}, History: flatHistory(7, 4)},
	}

	plan, err := e.AllocateBudget(inventory, 10000, false, StrategyAllOrNothing)
	require.NoError(t, err)
	require.Len(t, plan.Plan, 2)
	assert.Equal(t, "First", plan.Plan[0].Name)
	assert.Equal(t, "Second", plan.Plan[1].Name)
}

func TestAllocateBudget_StrategyContrast(t *testing.T) {
	// Cheap needs 14 units at 10 (140 total); Pricey needs 28 at 100
	// (2800 total) and scores higher. A 500 budget funds only Cheap under
	// all-or-nothing, but partial fill spends it all on Pricey instead.
	inventory := []ItemDemand{
		{Item: domain.Item{ID: 1, Name: "Cheap", Stock: 0, CostPrice: 10}, History: flatHistory(7, 4)},
		{Item: domain.Item{ID: 2, Name: "Pricey", Stock: 0, CostPrice: 100}, History: flatHistory(14, 4)},
	}

	e := newTestEngine()

	allOrNothing, err := e.AllocateBudget(inventory, 500, false, StrategyAllOrNothing)
	require.NoError(t, err)
	require.Len(t, allOrNothing.Plan, 1)
	assert.Equal(t, "Cheap", allOrNothing.Plan[0].Name)
	assert.Equal(t, 14, allOrNothing.Plan[0].Quantity)
	assert.InDelta(t, 140, allOrNothing.TotalCost, 1e-9)
	assert.InDelta(t, 360, allOrNothing.RemainingBudget, 1e-9)

	partial, err := e.AllocateBudget(inventory, 500, false, StrategyPartialFill)
	require.NoError(t, err)
	require.Len(t, partial.Plan, 1)
	assert.Equal(t, "Pricey", partial.Plan[0].Name)
	assert.Equal(t, 5, partial.Plan[0].Quantity)
	assert.InDelta(t, 500, partial.TotalCost, 1e-9)
	assert.InDelta(t, 0, partial.RemainingBudget, 1e-9)
}

func TestAllocateBudget_PartialFillCapsAtNeed(t *testing.T) {
	e := newTestEngine()

	// Needs 14 units at 10 each; a huge budget must still stop at 14.
	inventory := []ItemDemand{
		{Item: domain.Item{ID: 1, Name: "Capped", Stock: 0, CostPrice: 10}, History: flatHistory(7, 4)},
	}

	plan, err := e.AllocateBudget(inventory, 1e6, false, StrategyPartialFill)
	require.NoError(t, err)
	require.Len(t, plan.Plan, 1)
	assert.Equal(t, 14, plan.Plan[0].Quantity)
}
