package engine

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/freightlens/freightlens/internal/common"
	"github.com/freightlens/freightlens/internal/ingest"
	"github.com/freightlens/freightlens/internal/model"
)

// Normalizer coerces raw table rows into enriched orders. It is pure given
// its input table: the only output is the enriched slice or an error.
type Normalizer struct {
	Columns ingest.Columns

	// OnRow, when set, is called after each row is normalized. The CLI uses
	// it to drive a progress bar on large files.
	OnRow func(done, total int)
}

// dateLayouts are tried in order when parsing the order-date column.
// Spreadsheet exports are inconsistent; numeric Excel date serials are
// handled separately.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
}

// Normalize converts every row into an EnrichedOrder. An unparseable order
// date fails the whole dataset: period bucketing depends on the date for
// every row, so there is no partial-success mode. Non-numeric or missing
// monetary cells degrade to zero instead.
func (n *Normalizer) Normalize(table *ingest.Table) ([]model.EnrichedOrder, error) {
	dateCol, _ := table.Column(n.Columns.OrderDate)
	revenueCol := optionalColumn(table, n.Columns.Revenue)

	costCols := make(map[model.CostCategory]int, len(model.CostCategories))
	for _, category := range model.CostCategories {
		costCols[category] = optionalColumn(table, n.Columns.Cost(category))
	}

	accountCol := optionalColumn(table, n.Columns.Account)
	orderIDCol := optionalColumn(table, n.Columns.OrderID)
	statusCol := optionalColumn(table, n.Columns.Status)
	originCol := optionalColumn(table, n.Columns.Origin)

	orders := make([]model.EnrichedOrder, 0, len(table.Rows))
	for i := range table.Rows {
		raw := table.Cell(i, dateCol)
		date, ok := parseDate(raw)
		if !ok {
			return nil, &common.ParseError{
				Column: n.Columns.OrderDate,
				Value:  raw,
				Row:    i + 2, // 1-based, after the header row
			}
		}

		order := model.Order{
			Date:    date,
			Account: table.Cell(i, accountCol),
			OrderID: table.Cell(i, orderIDCol),
			Status:  table.Cell(i, statusCol),
			Origin:  table.Cell(i, originCol),
			Revenue: parseMoney(table.Cell(i, revenueCol)),
			Costs: model.Costs{
				Pickup:     parseMoney(table.Cell(i, costCols[model.CostPickup])),
				Shipping:   parseMoney(table.Cell(i, costCols[model.CostShipping])),
				Management: parseMoney(table.Cell(i, costCols[model.CostManagement])),
				Delivery:   parseMoney(table.Cell(i, costCols[model.CostDelivery])),
			},
		}

		totalCost := order.Costs.Total()
		profit := order.Revenue - totalCost

		orders = append(orders, model.EnrichedOrder{
			Order:     order,
			TotalCost: totalCost,
			Profit:    profit,
			MarginPct: model.Margin(profit, order.Revenue),
			Period:    model.PeriodOf(date),
		})

		if n.OnRow != nil {
			n.OnRow(i+1, len(table.Rows))
		}
	}

	return orders, nil
}

// optionalColumn resolves a column that may be absent; -1 reads as empty
// cells, which coerce to zero.
func optionalColumn(table *ingest.Table, name string) int {
	if name == "" {
		return -1
	}
	col, ok := table.Column(name)
	if !ok {
		return -1
	}
	return col
}

// excelEpoch is day zero of the 1900 date system (Excel counts from
// 1900-01-01 as serial 1 but inherits Lotus's phantom 1900 leap day, which
// the -30 December anchor absorbs).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	// Excel date serial: days since the 1900 epoch. Plausible order dates
	// land well above 10000 (~1927), which keeps bare small integers from
	// masquerading as dates.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= 10000 && serial < 80000 {
		days := math.Floor(serial)
		frac := serial - days
		return excelEpoch.AddDate(0, 0, int(days)).
			Add(time.Duration(frac * 24 * float64(time.Hour))), true
	}

	return time.Time{}, false
}

// parseMoney coerces a monetary cell to a float. Currency symbols, thousands
// separators, and accounting-style parentheses are tolerated; anything that
// still fails to parse is zero. Bad cost cells degrade gracefully rather
// than blocking the whole report.
func parseMoney(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") {
		negative = true
		value = value[1 : len(value)-1]
	}

	value = strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	if negative {
		amount = -amount
	}
	return amount
}
