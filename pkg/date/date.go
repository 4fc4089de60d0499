// Package date implements the calendar date used by work history records:
// a plain year/month/day triple with no time of day and no timezone.
package date

import (
	"fmt"
	"regexp"
	"strconv"
)

// Layout is the literal input format accepted by Parse.
const Layout = "MM/DD/YYYY"

// layoutRegex gates Parse before range validation: two digit month, two
// digit day, four digit year, slash separated, nothing before or after.
var layoutRegex = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// Date is an immutable calendar date. The zero value is not a usable date;
// construct one with New or Parse.
type Date struct {
	year  int
	month int
	day   int
}

// New validates year/month/day and returns the resulting Date.
func New(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d is out of range", month)
	}
	if day < 1 || day > daysIn(month, year) {
		return Date{}, fmt.Errorf("day %d is out of range for %02d/%04d", day, month, year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// Parse reads a date in the literal MM/DD/YYYY format. Components must be
// numeric and zero padded; trailing or leading characters are rejected.
func Parse(s string) (Date, error) {
	m := layoutRegex.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("date %q does not match %s", s, Layout)
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	d, err := New(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return d, nil
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1 when d is before o, 0 when the dates are equal, and
// +1 when d is after o.
func (d Date) Compare(o Date) int {
	a, b := d.ordinal(), o.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// String renders the date in its input layout, MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.month, d.day, d.year)
}

// MonthYear renders the date as MM/YYYY, the form used in reports. The day
// is dropped; month and year come straight from the stored values.
func (d Date) MonthYear() string {
	return fmt.Sprintf("%02d/%04d", d.month, d.year)
}

// ordinal collapses the date into a single sortable integer.
func (d Date) ordinal() int {
	return d.year*10000 + d.month*100 + d.day
}

func daysIn(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if isLeap(year) {
		return 29
	}
	return 28
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
