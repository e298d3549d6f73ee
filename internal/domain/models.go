// internal/domain/models.go
package domain

import "time"

// Item is a tracked inventory item. CostPrice is what we pay per unit;
// SellingPrice is optional and may be overridden per recommendation request.
type Item struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Stock        int       `json:"stock" db:"stock"`
	Category     string    `json:"category" db:"category"`
	CostPrice    float64   `json:"unit_price" db:"unit_price"`
	SellingPrice float64   `json:"selling_price,omitempty" db:"selling_price"`
	Unit         string    `json:"unit" db:"unit"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DemandEntry is one recorded week of demand for an item. Weeks are dense
// and 1-based per item; the repository renumbers them after an eviction.
type DemandEntry struct {
	ItemID   int64   `json:"itemId" db:"item_id"`
	Week     int     `json:"week" db:"week"`
	Quantity float64 `json:"quantity" db:"quantity"`
}

// StockRecommendation is the result of a single-item restocking analysis.
// Numeric fields are kept at full precision; rounding happens at the API
// boundary.
type StockRecommendation struct {
	ItemID             int64   `json:"itemId"`
	ItemName           string  `json:"itemName"`
	CurrentStock       int     `json:"currentStock"`
	AvgDailyDemand     float64 `json:"avgDailyDemand"`
	EffectiveDemand    float64 `json:"effectiveDailyDemand"`
	RecommendedStock   int     `json:"recommendedStock"`
	BuyQuantity        int     `json:"buyQuantity"`
	ShouldBuy          bool    `json:"shouldBuy"`
	HasIncreasingTrend bool    `json:"hasIncreasingTrend"`
	IsFestival         bool    `json:"isFestival"`
	MarginPercent      float64 `json:"marginPercent"`
	ExpectedProfit     float64 `json:"expectedProfit"`
	Explanation        string  `json:"aiExplanation,omitempty"`
}

// PlanLine is one committed purchase in a budget plan.
type PlanLine struct {
	ItemID          int64   `json:"itemId"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	Cost            float64 `json:"cost"`
	PriorityScore   float64 `json:"priorityScore"`
	RemainingBudget float64 `json:"remainingBudget"`
}

// BudgetPlan is the outcome of allocating a cash budget across items.
type BudgetPlan struct {
	Strategy        string     `json:"strategy"`
	Plan            []PlanLine `json:"plan"`
	TotalCost       float64    `json:"totalCost"`
	RemainingBudget float64    `json:"remainingBudget"`
	IsFestival      bool       `json:"isFestival"`
	Explanation     string     `json:"aiExplanation,omitempty"`
}
