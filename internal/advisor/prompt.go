package advisor

import (
	"fmt"
	"strings"

	"github.com/gdghack/stockwise/internal/domain"
)

// StockPrompt formats a single-item recommendation into a prompt for the
// text model. Pure function so it can be tested without the client.
func StockPrompt(rec domain.StockRecommendation) string {
	var b strings.Builder

	b.WriteString("You are an inventory advisor for a small shop. ")
	b.WriteString("Explain this restocking recommendation in 2-3 plain sentences for a non-technical owner.\n\n")

	fmt.Fprintf(&b, "Item: %s\n", rec.ItemName)
	fmt.Fprintf(&b, "Current stock: %d\n", rec.CurrentStock)
	fmt.Fprintf(&b, "Average daily demand: %.2f units\n", rec.AvgDailyDemand)
	fmt.Fprintf(&b, "Demand trend increasing: %t\n", rec.HasIncreasingTrend)
	fmt.Fprintf(&b, "Festival season: %t\n", rec.IsFestival)
	fmt.Fprintf(&b, "Profit margin: %.0f%%\n", rec.MarginPercent*100)
	fmt.Fprintf(&b, "Recommended stock level: %d\n", rec.RecommendedStock)
	fmt.Fprintf(&b, "Suggested purchase quantity: %d\n", rec.BuyQuantity)
	fmt.Fprintf(&b, "Expected profit on that purchase: %.2f\n", rec.ExpectedProfit)

	if rec.ShouldBuy {
		b.WriteString("\nThe recommendation is to BUY. Explain why, referencing the demand and margin.")
	} else {
		b.WriteString("\nThe recommendation is to NOT buy right now. Explain why the current stock is enough.")
	}

	return b.String()
}

// PlanPrompt formats a budget allocation outcome into a prompt.
func PlanPrompt(plan domain.BudgetPlan, budget float64) string {
	var b strings.Builder

	b.WriteString("You are an inventory advisor for a small shop. ")
	b.WriteString("Explain this purchase plan in 2-3 plain sentences for a non-technical owner.\n\n")

	fmt.Fprintf(&b, "Available budget: %.2f\n", budget)
	fmt.Fprintf(&b, "Festival season: %t\n", plan.IsFestival)
	fmt.Fprintf(&b, "Total to spend: %.2f\n", plan.TotalCost)
	fmt.Fprintf(&b, "Left unspent: %.2f\n", plan.RemainingBudget)

	if len(plan.Plan) == 0 {
		b.WriteString("No purchases fit: every item is either sufficiently stocked or too expensive for the budget.\n")
		b.WriteString("\nExplain why no purchase is suggested and what the owner could do instead.")
		return b.String()
	}

	b.WriteString("Purchases, most urgent first:\n")
	for _, line := range plan.Plan {
		fmt.Fprintf(&b, "- %s: %d units for %.2f\n", line.Name, line.Quantity, line.Cost)
	}

	b.WriteString("\nExplain why the money was allocated this way, mentioning demand urgency.")
	return b.String()
}
