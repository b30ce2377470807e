package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightlens/freightlens/internal/common"
	"github.com/freightlens/freightlens/internal/ingest"
)

func TestValidateSchema(t *testing.T) {
	cols := ingest.DefaultColumns()

	tests := []struct {
		name        string
		header      []string
		wantMissing []string
	}{
		{
			name:   "full header",
			header: []string{"ORD DT", "NET", "PU COST", "SHIP COST", "MAN COST", "DEL COST"},
		},
		{
			name:   "cost columns are optional",
			header: []string{"ORD DT", "NET"},
		},
		{
			name:        "missing revenue",
			header:      []string{"ORD DT", "PU COST"},
			wantMissing: []string{"NET"},
		},
		{
			name:        "missing date",
			header:      []string{"NET"},
			wantMissing: []string{"ORD DT"},
		},
		{
			name:        "missing both mandatory columns",
			header:      []string{"PU COST", "SHIP COST"},
			wantMissing: []string{"ORD DT", "NET"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := ingest.NewTable(tt.header, nil)
			err := ValidateSchema(table, cols)

			if len(tt.wantMissing) == 0 {
				assert.NoError(t, err)
				return
			}

			var schemaErr *common.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantMissing, schemaErr.MissingColumns)

			for _, name := range tt.wantMissing {
				assert.Contains(t, err.Error(), name, "error message must name the missing column")
			}
		})
	}
}
