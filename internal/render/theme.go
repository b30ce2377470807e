// Package render formats a composed report for the terminal. It is a pure
// presentation layer: everything it prints was already computed by the
// engine, and all styling flows from an immutable Theme passed in by the
// caller.
package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette for rendered reports. Values are fixed at
// construction; the renderer never mutates them.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Subtle  lipgloss.Color
}

// DefaultTheme returns the standard brand palette.
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#1B365D"), // navy
		Accent:  lipgloss.Color("#0066B3"), // blue
		Success: lipgloss.Color("#10B981"),
		Warning: lipgloss.Color("#F59E0B"),
		Danger:  lipgloss.Color("#EF4444"),
		Subtle:  lipgloss.Color("#6B7280"),
	}
}

// MonoTheme returns a grayscale palette for plain terminals.
func MonoTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("15"),
		Accent:  lipgloss.Color("7"),
		Success: lipgloss.Color("15"),
		Warning: lipgloss.Color("7"),
		Danger:  lipgloss.Color("15"),
		Subtle:  lipgloss.Color("8"),
	}
}

// ThemeByName resolves a configured theme name. Unknown names fall back to
// the default so a typo in config never blocks a report.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
