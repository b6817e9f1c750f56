// Package date provides a calendar-day value type for monthly bookkeeping.
//
// Snapshots are keyed by the last calendar day of their reporting month, so
// the package offers month-end derivation on top of the usual parsing and
// comparison operations.
package date

import (
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// LabelFormat is the short human form used as a column header in reports.
const LabelFormat = "Jan 2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// EndOfMonth returns the last calendar day of the given reporting month.
func EndOfMonth(year int, month time.Month) Date {
	// day 0 of the next month normalizes to the last day of this one.
	return New(year, month+1, 0)
}

// MonthEnd returns the last calendar day of d's month.
func (d Date) MonthEnd() Date { return EndOfMonth(d.y, d.m) }

// MonthStart returns the first calendar day of d's month.
func (d Date) MonthStart() Date { return New(d.y, d.m, 1) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Label formats the date as a short month-year column header like "Jan 2024".
func (d Date) Label() string { return d.time().Format(LabelFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseMonth parses an English month given by full name, three-letter
// abbreviation, or number ("January", "Jan", "1").
func ParseMonth(str string) (time.Month, error) {
	for _, layout := range []string{"January", "Jan", "1"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.Month(), nil
		}
	}
	return 0, fmt.Errorf("invalid month %q want a name like %q or a number in [1..12]", str, "January")
}
