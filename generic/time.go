package generic

import (
	"fmt"
	"time"
)

// =============================================================================
// DAY - Calendar dates at day granularity (UTC midnight)
// =============================================================================

// DateLayout is the persisted layout for every date column.
const DateLayout = "2006-01-02"

// MonthLayout is the persisted layout for reference months.
const MonthLayout = "2006-01"

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDate returns midnight UTC of the given calendar day.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DaysBetween(from, to time.Time) int { return int(Day(to).Sub(Day(from)).Hours() / 24) }

// AddMonths moves t by n calendar months, clamping the day to the end of the
// target month (Mar 31 minus one month is Feb 28/29, not Mar 3).
func AddMonths(t time.Time, n int) time.Time {
	target := MonthOf(t)
	start := target.Start().AddDate(0, n, 0)
	last := start.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return NewDate(start.Year(), start.Month(), day)
}

// AddYears moves t by n years, clamping Feb 29 to Feb 28.
func AddYears(t time.Time, n int) time.Time { return AddMonths(t, 12*n) }

// =============================================================================
// MONTH - Year-month value used as the payroll reference key
// =============================================================================

// Month is a calendar month. The zero value is not a valid month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid reference month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Start is the first day of the month.
func (m Month) Start() time.Time { return NewDate(m.Year, m.Month, 1) }

// End is the first day of the following month (exclusive bound).
func (m Month) End() time.Time { return m.Next().Start() }

// Next steps one calendar month forward.
func (m Month) Next() Month { return MonthOf(m.Start().AddDate(0, 1, 0)) }

func (m Month) Before(other Month) bool {
	return m.Year < other.Year || (m.Year == other.Year && m.Month < other.Month)
}

func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)) }

// MonthsBetween returns every month in [from, to), in order.
// Returns nil when from is not before to.
func MonthsBetween(from, to Month) []Month {
	var months []Month
	for current := from; current.Before(to); current = current.Next() {
		months = append(months, current)
	}
	return months
}
