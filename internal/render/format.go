package render

import (
	"fmt"
	"math"
)

// FormatCurrency renders a USD amount with thousands abbreviated, matching
// the dashboard convention: $1.2M, $3.4K, $950.
func FormatCurrency(value float64, decimals int) string {
	if value == 0 {
		return "$0"
	}

	abs := math.Abs(value)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.*fM", decimals, value/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.*fK", decimals, value/1_000)
	default:
		return fmt.Sprintf("$%.*f", decimals, value)
	}
}

// FormatPercent renders a percentage with the given precision.
func FormatPercent(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}
