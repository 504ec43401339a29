// Package dates provides the calendar date type used across the journal and
// the canonical parsing helpers for it.
//
// Date carries no clock or location. Conversions to time.Time use UTC midnight.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO layout used for CLI arguments, JSON and issue output.
	DateLayout = "2006-01-02"

	// FriendlyLayout is the layout written into entry headings.
	FriendlyLayout = "Monday, January 02, 2006"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a valid Gregorian calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year/month/day, or an error when it does not exist
// on the calendar (e.g. February 30).
func New(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month %d", int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("invalid day %d for %s %d", day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNew is New for literals in tests and tables. It panics on invalid input.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns d at UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// YearDay returns the ordinal day in the year, 1..366.
func (d Date) YearDay() int {
	return d.Time().YearDay()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Compare returns -1, 0 or +1 ordering d against o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Friendly formats d the way entry headings spell it: "Friday, March 15, 2024".
func (d Date) Friendly() string {
	return d.Time().Format(FriendlyLayout)
}

// MarshalText implements encoding.TextMarshaler so dates render as YYYY-MM-DD in JSON.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FirstOfYear returns January 1 of year.
func FirstOfYear(year int) Date {
	return Date{Year: year, Month: time.January, Day: 1}
}

// LastOfYear returns December 31 of year.
func LastOfYear(year int) Date {
	return Date{Year: year, Month: time.December, Day: 31}
}

// Range returns every date from start to end inclusive. It is empty when end
// is before start.
func Range(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}
	out := make([]Date, 0, int(end.Time().Sub(start.Time()).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// ElapsedInYear returns the dates of year that are not after today: the whole
// year for past years, Jan 1..today for the current year and nothing for
// future years.
func ElapsedInYear(year int, today Date) []Date {
	switch {
	case year > today.Year:
		return nil
	case year < today.Year:
		return Range(FirstOfYear(year), LastOfYear(year))
	default:
		return Range(FirstOfYear(year), today)
	}
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if !dateRegex.MatchString(s) {
		return Date{}, fmt.Errorf("invalid date: %q", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date: %q", s)
	}
	return FromTime(t), nil
}

// ParseDateArg parses a CLI date argument which can be:
// - "today", "yesterday", "tomorrow" (relative to today)
// - "YYYY-MM-DD" format (absolute date)
// - Empty string defaults to today
func ParseDateArg(arg string, today Date) (Date, error) {
	if arg == "" {
		return today, nil
	}

	dateArg := strings.ToLower(strings.TrimSpace(arg))
	switch dateArg {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	default:
		parsed, err := ParseDate(dateArg)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date format '%s', use YYYY-MM-DD or today/yesterday/tomorrow", dateArg)
		}
		return parsed, nil
	}
}

// ValidateYear checks that a year argument is in the range the journal supports.
func ValidateYear(year int) error {
	if year < 2000 || year > 2099 {
		return fmt.Errorf("year must be between 2000 and 2099, got %d", year)
	}
	return nil
}
