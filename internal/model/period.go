package model

import "time"

// PeriodKey identifies a calendar-month bucket. Keys compare and sort
// chronologically, independent of any display formatting.
type PeriodKey struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the calendar-month bucket containing t.
func PeriodOf(t time.Time) PeriodKey {
	return PeriodKey{Year: t.Year(), Month: t.Month()}
}

// String returns the sortable key form, e.g. "2024-03".
func (p PeriodKey) String() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Label returns the display form, e.g. "Mar 2024".
func (p PeriodKey) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// Before reports whether p is chronologically earlier than other.
func (p PeriodKey) Before(other PeriodKey) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}
