package engine

import (
	"log/slog"

	"github.com/freightlens/freightlens/internal/ingest"
	"github.com/freightlens/freightlens/internal/model"
)

// Result carries everything a caller needs from one pipeline run: the
// composed report and the enriched per-order rows for raw export.
type Result struct {
	Summary *model.DatasetSummary
	Orders  []model.EnrichedOrder
}

// Option configures a pipeline run.
type Option func(*Normalizer)

// WithProgress registers fn to be called after each normalized row.
func WithProgress(fn func(done, total int)) Option {
	return func(n *Normalizer) {
		n.OnRow = fn
	}
}

// Run executes the full pipeline against one table: schema validation, row
// normalization, period and category aggregation, summary composition. Any
// validation or parse failure aborts the run and surfaces a single error;
// there is no partial dataset.
func Run(table *ingest.Table, cols ingest.Columns, opts ...Option) (*Result, error) {
	if err := ValidateSchema(table, cols); err != nil {
		return nil, err
	}

	normalizer := &Normalizer{Columns: cols}
	for _, opt := range opts {
		opt(normalizer)
	}

	orders, err := normalizer.Normalize(table)
	if err != nil {
		return nil, err
	}

	periods := AggregatePeriods(orders)
	categories := BreakdownCategories(orders)
	summary := Compose(orders, periods, categories)

	slog.Debug("pipeline complete",
		"orders", summary.OrderCount,
		"periods", len(summary.Periods),
		"total_revenue", summary.TotalRevenue,
		"total_profit", summary.TotalProfit)

	return &Result{Summary: summary, Orders: orders}, nil
}
