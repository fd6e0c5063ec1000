// Package date provides a day-granularity date type for the US-style dates
// found in financial reports.
package date

import (
	"fmt"
	"time"
)

// reportFormat is the permissive US-style format used in financial reports
// (allows single-digit month/day).
const reportFormat = "1/2/2006"

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

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

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its standard ISO format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format formats the date with the given reference layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// ParseReport parses a US-style date as found in financial report rows,
// like "6/29/2015".
func ParseReport(str string) (Date, error) {
	on, err := time.Parse(reportFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, reportFormat, err)
	}
	return New(on.Date()), nil
}

// MustParseReport is like ParseReport but panics on error.
func MustParseReport(str string) Date {
	d, err := ParseReport(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
