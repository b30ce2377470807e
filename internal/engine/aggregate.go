package engine

import (
	"sort"

	"github.com/freightlens/freightlens/internal/model"
)

// AggregatePeriods groups enriched orders by calendar month and sums the
// monetary fields of each group. Each period's margin is computed from the
// group's summed profit and revenue, not averaged over per-order margins;
// averaging would let small-denominator orders distort the figure. The
// result is sorted chronologically regardless of input row order.
func AggregatePeriods(orders []model.EnrichedOrder) []model.PeriodSummary {
	groups := make(map[model.PeriodKey]*model.PeriodSummary)

	for i := range orders {
		order := &orders[i]
		summary, ok := groups[order.Period]
		if !ok {
			summary = &model.PeriodSummary{
				Period: order.Period,
				Label:  order.Period.Label(),
			}
			groups[order.Period] = summary
		}

		summary.Revenue += order.Revenue
		summary.Costs.Add(order.Costs)
		summary.TotalCost += order.TotalCost
		summary.Profit += order.Profit
		summary.OrderCount++
	}

	periods := make([]model.PeriodSummary, 0, len(groups))
	for _, summary := range groups {
		summary.MarginPct = model.Margin(summary.Profit, summary.Revenue)
		periods = append(periods, *summary)
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period.Before(periods[j].Period)
	})

	return periods
}

// BreakdownCategories sums each cost component across the whole dataset and
// computes its share of total cost. Output is ordered by descending amount
// for reporting; ties fall back to the canonical category order so the
// result is deterministic. A zero grand total yields all-zero shares.
func BreakdownCategories(orders []model.EnrichedOrder) []model.CategoryBreakdown {
	var totals model.Costs
	for i := range orders {
		totals.Add(orders[i].Costs)
	}

	grandTotal := totals.Total()

	breakdown := make([]model.CategoryBreakdown, 0, len(model.CostCategories))
	for _, category := range model.CostCategories {
		amount := totals.Amount(category)
		entry := model.CategoryBreakdown{
			Category: category,
			Amount:   amount,
		}
		if grandTotal != 0 {
			entry.PctOfTotalCost = amount / grandTotal * 100
		}
		breakdown = append(breakdown, entry)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})

	return breakdown
}
