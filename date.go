package finance

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
// Out-of-range components wrap the way [time.Date] does, so
// NewDate(2024, 3, 0) is the last day of February 2024.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// MonthDay returns the date for the given day within the month of d, clamping
// the day to the month's last valid day. MonthDay on February with day=31
// yields Feb 28 (29 in a leap year).
func (d Date) MonthDay(day int) Date {
	last := d.EndOfMonth()
	if day > last.d {
		return last
	}
	return NewDate(d.y, d.m, day)
}

// Key returns the "YYYY-MM" month key for the date.
func (d Date) Key() MonthKey { return MonthKey(d.time().Format("2006-01")) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1" as well as full RFC3339 timestamps (the original web app
// stored transaction dates as ISO timestamps).
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		on, err = time.Parse(time.RFC3339, str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error. For tests and seeds.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// MonthKey identifies a calendar month as a "YYYY-MM" string. Financial
// support deposits are tied to a month, not a day.
type MonthKey string

// ParseMonthKey validates a "YYYY-MM" string.
func ParseMonthKey(str string) (MonthKey, error) {
	str = strings.TrimSpace(str)
	t, err := time.Parse("2006-01", str)
	if err != nil {
		return "", fmt.Errorf("invalid month %q want format \"YYYY-MM\": %w", str, err)
	}
	return MonthKey(t.Format("2006-01")), nil
}

// First returns the first day of the month. The zero MonthKey yields the zero Date.
func (k MonthKey) First() Date {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), 1)
}

func (k MonthKey) String() string { return string(k) }
