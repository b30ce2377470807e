package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightlens/freightlens/internal/engine"
	"github.com/freightlens/freightlens/internal/ingest"
	"github.com/freightlens/freightlens/internal/model"
)

func runFixture(t *testing.T) *engine.Result {
	t.Helper()

	table := ingest.NewTable(
		[]string{"ORD DT", "NET", "PU COST", "SHIP COST", "MAN COST", "DEL COST", "ACCT NM", "ORD#"},
		[][]string{
			{"2024-01-10", "1000", "100", "50", "0", "50", "SR Technics", "A-1"},
			{"2024-02-05", "2000", "200", "100", "100", "100", "SR Technics", "A-2"},
		},
	)

	result, err := engine.Run(table, ingest.DefaultColumns())
	require.NoError(t, err)
	return result
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteMonthlySummary(t *testing.T) {
	result := runFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlySummary(&buf, result.Summary))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 3, "header plus one row per period")

	assert.Equal(t, "Period", records[0][0])
	assert.Equal(t, "Orders", records[0][10])

	jan := records[1]
	assert.Equal(t, "2024-01", jan[0])
	assert.Equal(t, "Jan 2024", jan[1])
	assert.Equal(t, "1000.00", jan[2])
	assert.Equal(t, "200.00", jan[3])
	assert.Equal(t, "800.00", jan[4])
	assert.Equal(t, "80.00", jan[5])
	assert.Equal(t, "1", jan[10])

	assert.Equal(t, "2024-02", records[2][0], "periods stay chronological")
}

func TestWriteOrders_DescendingDate(t *testing.T) {
	result := runFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, result.Orders))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 3)

	assert.Equal(t, "Order Date", records[0][0])
	assert.Equal(t, "2024-02-05", records[1][0], "newest order first")
	assert.Equal(t, "2024-01-10", records[2][0])

	assert.Equal(t, "A-2", records[1][2])
	assert.Equal(t, "500.00", records[1][9], "total costs column")
	assert.Equal(t, "2000.00", records[1][10])
	assert.Equal(t, "1500.00", records[1][11])
	assert.Equal(t, "75.00", records[1][12])
}

func TestWriteOrders_DoesNotMutateInput(t *testing.T) {
	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	orders := []model.EnrichedOrder{
		{Order: model.Order{Date: jan}},
		{Order: model.Order{Date: feb}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, orders))

	assert.True(t, orders[0].Date.Equal(jan), "input slice order is preserved")
	assert.True(t, orders[1].Date.Equal(feb))
}

func TestWriteMonthlySummary_EmptyDataset(t *testing.T) {
	summary := &model.DatasetSummary{}

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlySummary(&buf, summary))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 1, "header only")
}
