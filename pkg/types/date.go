// Date calendar value used for production and expiry windows.
// Dates are values: copying is the only way they are shared, and every
// "setter" returns a new Date.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Calendar bounds.
const (
	MinYear = 1000
	MaxYear = 9999
)

// DefaultDate is the fallback for invalid construction and the successor of
// the last supported day (31/12/9999).
var DefaultDate = Date{day: 1, month: 1, year: 2000}

// Date is a day/month/year triple. The zero value is not a valid date; use
// NewDate or ParseDate.
type Date struct {
	day   int
	month int
	year  int
}

// NewDate returns the date for the given triple, or DefaultDate when the
// triple is not a valid calendar date.
func NewDate(day, month, year int) Date {
	if !IsValidDate(day, month, year) {
		return DefaultDate
	}
	return Date{day: day, month: month, year: year}
}

// ParseDate parses dd/mm/yyyy. Unlike NewDate it reports invalid input
// with ErrInvalidDate instead of falling back.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q (expected dd/mm/yyyy)", ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	if !IsValidDate(nums[0], nums[1], nums[2]) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{day: nums[0], month: nums[1], year: nums[2]}, nil
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// daysInMonth returns the length of month in year, or 0 for an unknown month.
func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsValidDate reports whether the triple names a real day between
// 1/1/1000 and 31/12/9999.
func IsValidDate(day, month, year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	return day >= 1 && day <= daysInMonth(month, year)
}

// valid reports whether d is a real calendar date. The zero Date is not.
func (d Date) valid() bool {
	return IsValidDate(d.day, d.month, d.year)
}

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Month returns the month of the year.
func (d Date) Month() int { return d.month }

// Year returns the year.
func (d Date) Year() int { return d.year }

// WithDay returns d with its day replaced. If the result would be invalid,
// d is returned unchanged.
func (d Date) WithDay(day int) Date {
	if !IsValidDate(day, d.month, d.year) {
		return d
	}
	d.day = day
	return d
}

// WithMonth returns d with its month replaced, or d unchanged if invalid.
func (d Date) WithMonth(month int) Date {
	if !IsValidDate(d.day, month, d.year) {
		return d
	}
	d.month = month
	return d
}

// WithYear returns d with its year replaced, or d unchanged if invalid.
func (d Date) WithYear(year int) Date {
	if !IsValidDate(d.day, d.month, year) {
		return d
	}
	d.year = year
	return d
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether both dates name the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Next returns the following day. The day after 31/12/9999 is DefaultDate.
func (d Date) Next() Date {
	switch {
	case IsValidDate(d.day+1, d.month, d.year):
		return Date{day: d.day + 1, month: d.month, year: d.year}
	case IsValidDate(1, d.month+1, d.year):
		return Date{day: 1, month: d.month + 1, year: d.year}
	case IsValidDate(1, 1, d.year+1):
		return Date{day: 1, month: 1, year: d.year + 1}
	default:
		return DefaultDate
	}
}

// Weekday returns the day of the week, 0 for Saturday through 6 for Friday.
func (d Date) Weekday() int {
	day, month, year := d.day, d.month, d.year
	if month < 3 {
		month += 12
		year--
	}
	y := year % 100
	c := year / 100
	res := (day + (26*(month+1))/10 + y + y/4 + c/4 - 2*c) % 7
	return (res + 7) % 7
}

// Difference returns the absolute number of days between d and other.
func (d Date) Difference(other Date) int {
	diff := daysSinceEpoch(d.day, d.month, d.year) - daysSinceEpoch(other.day, other.month, other.year)
	if diff < 0 {
		return -diff
	}
	return diff
}

// daysSinceEpoch counts days from a fixed proleptic origin. Only differences
// between two results are meaningful.
func daysSinceEpoch(day, month, year int) int {
	if month < 3 {
		year--
		month += 12
	}
	return 365*year + year/4 - year/100 + year/400 + ((month+1)*306)/10 + (day - 62)
}

// String formats the date as dd/mm/yyyy.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.day, d.month, d.year)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDate.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
