package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightlens/freightlens/internal/common"
	"github.com/freightlens/freightlens/internal/ingest"
)

var fullHeader = []string{"ORD DT", "NET", "PU COST", "SHIP COST", "MAN COST", "DEL COST"}

func TestRun_WorkedExample(t *testing.T) {
	table := ingest.NewTable(fullHeader, [][]string{
		{"2024-01-10", "1000", "100", "50", "0", "50"},
		{"2024-01-20", "500", "0", "0", "0", "0"},
		{"2024-02-05", "2000", "200", "100", "100", "100"},
	})

	result, err := Run(table, ingest.DefaultColumns())
	require.NoError(t, err)

	summary := result.Summary
	assert.Equal(t, 3500.0, summary.TotalRevenue)
	assert.Equal(t, 700.0, summary.TotalCost)
	assert.Equal(t, 2800.0, summary.TotalProfit)
	assert.InDelta(t, 80.0, summary.OverallMarginPct, 1e-9)
	assert.Equal(t, 3, summary.OrderCount)

	require.Len(t, summary.Periods, 2)

	jan := summary.Periods[0]
	assert.Equal(t, "Jan 2024", jan.Label)
	assert.Equal(t, 1500.0, jan.Revenue)
	assert.Equal(t, 200.0, jan.TotalCost)
	assert.Equal(t, 1300.0, jan.Profit)
	assert.InDelta(t, 86.7, jan.MarginPct, 0.05)
	assert.Equal(t, 2, jan.OrderCount)

	feb := summary.Periods[1]
	assert.Equal(t, "Feb 2024", feb.Label)
	assert.Equal(t, 2000.0, feb.Revenue)
	assert.Equal(t, 500.0, feb.TotalCost)
	assert.Equal(t, 1500.0, feb.Profit)
	assert.InDelta(t, 75.0, feb.MarginPct, 1e-9)
	assert.Equal(t, 1, feb.OrderCount)
}

func TestRun_MissingRevenueColumnIsSchemaError(t *testing.T) {
	table := ingest.NewTable(
		[]string{"ORD DT", "PU COST"},
		[][]string{{"2024-01-10", "100"}},
	)

	_, err := Run(table, ingest.DefaultColumns())
	require.Error(t, err)
	assert.True(t, common.IsSchemaError(err))
	assert.Contains(t, err.Error(), "NET")
}

func TestRun_MissingAllCostColumnsSucceeds(t *testing.T) {
	table := ingest.NewTable(
		[]string{"ORD DT", "NET"},
		[][]string{
			{"2024-01-10", "1000"},
			{"2024-02-05", "2000"},
		},
	)

	result, err := Run(table, ingest.DefaultColumns())
	require.NoError(t, err)

	summary := result.Summary
	assert.Equal(t, 0.0, summary.TotalCost)
	assert.Equal(t, summary.TotalRevenue, summary.TotalProfit,
		"with no cost columns, profit equals revenue")
	for _, entry := range summary.Categories {
		assert.Equal(t, 0.0, entry.Amount)
	}
}

func TestRun_BadDateAbortsWholeRun(t *testing.T) {
	table := ingest.NewTable(fullHeader, [][]string{
		{"2024-01-10", "1000", "0", "0", "0", "0"},
		{"garbage", "500", "0", "0", "0", "0"},
		{"2024-02-05", "2000", "0", "0", "0", "0"},
	})

	result, err := Run(table, ingest.DefaultColumns())
	require.Error(t, err)
	assert.Nil(t, result, "no partial result when a date fails to parse")
	assert.True(t, common.IsParseError(err))
}

func TestRun_InputOrderDoesNotAffectPeriodOrder(t *testing.T) {
	rows := [][]string{
		{"2024-03-01", "300", "0", "0", "0", "0"},
		{"2024-01-01", "100", "0", "0", "0", "0"},
		{"2024-02-01", "200", "0", "0", "0", "0"},
	}

	forward, err := Run(ingest.NewTable(fullHeader, rows), ingest.DefaultColumns())
	require.NoError(t, err)

	shuffled := [][]string{rows[2], rows[0], rows[1]}
	reordered, err := Run(ingest.NewTable(fullHeader, shuffled), ingest.DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, forward.Summary.Periods, reordered.Summary.Periods)
}

func TestRun_IndependentInvocationsShareNothing(t *testing.T) {
	table := ingest.NewTable(fullHeader, [][]string{
		{"2024-01-10", "1000", "100", "0", "0", "0"},
	})

	first, err := Run(table, ingest.DefaultColumns())
	require.NoError(t, err)
	second, err := Run(table, ingest.DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.NotSame(t, first.Summary, second.Summary,
		"each run composes its summary from scratch")
}

func TestRun_ProgressOption(t *testing.T) {
	table := ingest.NewTable(fullHeader, [][]string{
		{"2024-01-10", "1000", "0", "0", "0", "0"},
		{"2024-01-11", "1000", "0", "0", "0", "0"},
	})

	var seen int
	_, err := Run(table, ingest.DefaultColumns(), WithProgress(func(done, total int) {
		seen = done
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}
