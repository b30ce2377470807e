// Package export writes engine output as delimited text for download or
// further processing. It formats what the engine computed; it never
// re-derives sums.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/freightlens/freightlens/internal/model"
)

// WriteMonthlySummary writes one row per period, chronologically ordered as
// the engine produced them.
func WriteMonthlySummary(w io.Writer, summary *model.DatasetSummary) error {
	writer := csv.NewWriter(w)

	header := []string{
		"Period", "Month", "Revenue", "Total Costs", "Profit", "Margin %",
		"Pickup Cost", "Shipping Cost", "Management Cost", "Delivery Cost", "Orders",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, period := range summary.Periods {
		record := []string{
			period.Period.String(),
			period.Label,
			money(period.Revenue),
			money(period.TotalCost),
			money(period.Profit),
			percent(period.MarginPct),
			money(period.Costs.Pickup),
			money(period.Costs.Shipping),
			money(period.Costs.Management),
			money(period.Costs.Delivery),
			strconv.Itoa(period.OrderCount),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write period %s: %w", period.Period, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteOrders writes the full enriched dataset, one row per order, sorted by
// descending order date. The input slice is not modified.
func WriteOrders(w io.Writer, orders []model.EnrichedOrder) error {
	sorted := make([]model.EnrichedOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	writer := csv.NewWriter(w)

	header := []string{
		"Order Date", "Account", "Order ID", "Status", "Origin",
		"Pickup Cost", "Shipping Cost", "Management Cost", "Delivery Cost",
		"Total Costs", "Revenue", "Profit", "Margin %",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range sorted {
		order := &sorted[i]
		record := []string{
			order.Date.Format("2006-01-02"),
			order.Account,
			order.OrderID,
			order.Status,
			order.Origin,
			money(order.Costs.Pickup),
			money(order.Costs.Shipping),
			money(order.Costs.Management),
			money(order.Costs.Delivery),
			money(order.TotalCost),
			money(order.Revenue),
			money(order.Profit),
			percent(order.MarginPct),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write order %s: %w", order.OrderID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
