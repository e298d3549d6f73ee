package engine

// MarginPercent expresses margin as a fraction of the selling price, so a
// 50-cost 100-sell item has a 0.5 margin. Selling below cost gives a
// negative margin; callers treat that as the no-bonus tier. Returns 0 when
// either price is unset to avoid dividing by zero.
func MarginPercent(costPrice, sellPrice float64) float64 {
	if costPrice <= 0 || sellPrice <= 0 {
		return 0
	}

	return (sellPrice - costPrice) / sellPrice
}
