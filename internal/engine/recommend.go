package engine

import (
	"math"

	"github.com/gdghack/stockwise/internal/domain"
)

// RecommendStock analyses one item against its weekly demand history and
// produces a restocking recommendation. sellingPrice overrides the price
// stored on the item when > 0; festival applies the seasonality boost.
// Item existence is the caller's responsibility.
func (e *Engine) RecommendStock(item domain.Item, history []float64, sellingPrice float64, festival bool) domain.StockRecommendation {
	// 1. Demand statistics over the rolling window
	avgDaily := e.AverageDailyDemand(history)
	trending := e.HasIncreasingTrend(history)

	// 2. Margin against the effective selling price
	sell := item.SellingPrice
	if sellingPrice > 0 {
		sell = sellingPrice
	}
	margin := MarginPercent(item.CostPrice, sell)

	// 3. Adjusted demand and the stock target over the buffer horizon
	effective := e.EffectiveDailyDemand(avgDaily, trending, margin, festival)
	recommended := int(math.Ceil(effective * float64(e.cfg.BufferDays)))

	buyQty := recommended - item.Stock
	if buyQty < 0 {
		buyQty = 0
	}

	// Expected profit is not clamped; selling below cost shows up negative.
	profit := float64(buyQty) * (sell - item.CostPrice)

	return domain.StockRecommendation{
		ItemID:             item.ID,
		ItemName:           item.Name,
		CurrentStock:       item.Stock,
		AvgDailyDemand:     avgDaily,
		EffectiveDemand:    effective,
		RecommendedStock:   recommended,
		BuyQuantity:        buyQty,
		ShouldBuy:          buyQty > 0,
		HasIncreasingTrend: trending,
		IsFestival:         festival,
		MarginPercent:      margin,
		ExpectedProfit:     profit,
	}
}
