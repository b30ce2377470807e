package model

import "time"

// DateRange represents a time period with start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PeriodSummary aggregates all orders that fall into one calendar month.
// MarginPct is computed from the summed profit and revenue of the group,
// never averaged over per-order margins.
type PeriodSummary struct {
	Period     PeriodKey
	Label      string
	Revenue    float64
	Costs      Costs
	TotalCost  float64
	Profit     float64
	MarginPct  float64
	OrderCount int
}

// CategoryBreakdown holds the dataset-wide total for one cost category and
// its share of total cost. Shares sum to 100 whenever total cost is nonzero.
type CategoryBreakdown struct {
	Category       CostCategory
	Amount         float64
	PctOfTotalCost float64
}

// DatasetSummary is the complete report for one ingested dataset: dataset
// totals, the chronologically ordered period summaries, and the cost
// breakdown ordered by descending amount. It is built once per invocation
// and never shared across runs.
type DatasetSummary struct {
	TotalRevenue     float64
	TotalCost        float64
	TotalProfit      float64
	OverallMarginPct float64
	OrderCount       int
	DateRange        DateRange

	// Derived convenience metrics for reporting.
	AvgOrderValue   float64
	AvgCostPerOrder float64
	TopCostDriver   CategoryBreakdown

	// Optional passthrough metadata; empty when the source has no account column.
	AccountName string

	Periods    []PeriodSummary
	Categories []CategoryBreakdown
}
