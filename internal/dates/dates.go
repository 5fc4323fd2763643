// Package dates parses and compares calendar dates in the tracker's
// canonical YYYY-MM-DD format.
package dates

import (
	"fmt"
	"strconv"
	"time"
)

// Format is the canonical textual date format.
const Format = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse converts a YYYY-MM-DD string into a Date. It rejects strings whose
// shape does not match and dates that do not exist on the calendar: the
// parsed components are rebuilt through time.Date and compared back, so
// "2024-02-30" fails instead of normalizing to March 1st.
func Parse(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in date %q: %w", s, err)
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in date %q: %w", s, err)
	}
	day, err := strconv.Atoi(s[8:])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in date %q: %w", s, err)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date %q: not a calendar date", s)
	}

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// New builds a Date from components without validation.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Ordinal returns a total-ordered integer (year*10000 + month*100 + day)
// usable for range comparison.
func (d Date) Ordinal() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Ordinal() < other.Ordinal()
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.Ordinal() > other.Ordinal()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey returns the YYYY-MM grouping key for monthly summaries.
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}
