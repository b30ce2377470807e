package main

import (
	"github.com/spf13/viper"

	"github.com/freightlens/freightlens/internal/ingest"
)

// columnsFromConfig resolves the source column headers, starting from the
// standard logistics export names and applying any overrides from the
// config file or environment.
func columnsFromConfig() ingest.Columns {
	cols := ingest.DefaultColumns()

	overrides := map[string]*string{
		"columns.order_date": &cols.OrderDate,
		"columns.revenue":    &cols.Revenue,
		"columns.pickup":     &cols.Pickup,
		"columns.shipping":   &cols.Shipping,
		"columns.management": &cols.Management,
		"columns.delivery":   &cols.Delivery,
		"columns.account":    &cols.Account,
		"columns.order_id":   &cols.OrderID,
		"columns.status":     &cols.Status,
		"columns.origin":     &cols.Origin,
	}

	for key, target := range overrides {
		if v := viper.GetString(key); v != "" {
			*target = v
		}
	}

	return cols
}

// delimiterFromConfig returns the configured CSV delimiter, defaulting to a
// comma when unset.
func delimiterFromConfig() rune {
	if v := viper.GetString("csv.delimiter"); v != "" {
		return rune(v[0])
	}
	return 0
}
