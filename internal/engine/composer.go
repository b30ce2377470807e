package engine

import (
	"github.com/freightlens/freightlens/internal/model"
)

// Compose combines the dataset-wide sums, the ordered period summaries, and
// the category breakdown into the report object handed to presentation.
// Totals are straight sums over the enriched orders rather than a
// re-aggregation of period sums; the two must agree numerically, which the
// tests assert.
func Compose(orders []model.EnrichedOrder, periods []model.PeriodSummary, categories []model.CategoryBreakdown) *model.DatasetSummary {
	summary := &model.DatasetSummary{
		OrderCount: len(orders),
		Periods:    periods,
		Categories: categories,
	}

	for i := range orders {
		order := &orders[i]
		summary.TotalRevenue += order.Revenue
		summary.TotalCost += order.TotalCost
		summary.TotalProfit += order.Profit

		if i == 0 || order.Date.Before(summary.DateRange.Start) {
			summary.DateRange.Start = order.Date
		}
		if i == 0 || order.Date.After(summary.DateRange.End) {
			summary.DateRange.End = order.Date
		}
		if summary.AccountName == "" {
			summary.AccountName = order.Account
		}
	}

	summary.OverallMarginPct = model.Margin(summary.TotalProfit, summary.TotalRevenue)

	if summary.OrderCount > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / float64(summary.OrderCount)
		summary.AvgCostPerOrder = summary.TotalCost / float64(summary.OrderCount)
	}
	if len(categories) > 0 {
		summary.TopCostDriver = categories[0]
	}

	return summary
}
