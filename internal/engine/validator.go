// Package engine implements the profitability pipeline: schema validation,
// row normalization, period and category aggregation, and summary
// composition. The pipeline is a single pass over an immutable input table;
// it holds no state between invocations.
package engine

import (
	"github.com/freightlens/freightlens/internal/common"
	"github.com/freightlens/freightlens/internal/ingest"
)

// ValidateSchema confirms the mandatory columns exist in the table. The
// order-date and revenue columns are required; each cost column is
// individually optional and an absent one is treated as a column of zeros
// downstream. All missing mandatory columns are reported together so the
// user fixes the file once.
func ValidateSchema(table *ingest.Table, cols ingest.Columns) error {
	var missing []string

	if !table.HasColumn(cols.OrderDate) {
		missing = append(missing, cols.OrderDate)
	}
	if !table.HasColumn(cols.Revenue) {
		missing = append(missing, cols.Revenue)
	}

	if len(missing) > 0 {
		return &common.SchemaError{MissingColumns: missing}
	}
	return nil
}
