package finance

import (
	"fmt"
	"strings"
)

// FilterPeriod selects the calendar interval a filter applies to. Every
// period except Custom deterministically derives a date range anchored to
// "today" at evaluation time; Custom keeps whatever explicit range was set.
type FilterPeriod int

const (
	AllTime FilterPeriod = iota
	ThisMonth
	LastMonth
	Last3Months
	ThisYear
	Custom
)

// allTimeRange is wide enough to include any realistic record.
var allTimeFrom = NewDate(1970, 1, 1)
var allTimeTo = NewDate(2100, 12, 31)

// Range derives the inclusive [from, to] interval for the period, anchored to
// the given day. For Custom it returns the zero Range: the caller owns the
// explicit range.
func (p FilterPeriod) Range(today Date) Range {
	switch p {
	case ThisMonth:
		return Range{From: today.StartOfMonth(), To: today.EndOfMonth()}
	case LastMonth:
		last := today.StartOfMonth().AddMonth(-1)
		return Range{From: last, To: last.EndOfMonth()}
	case Last3Months:
		return Range{From: today.StartOfMonth().AddMonth(-2), To: today.EndOfMonth()}
	case ThisYear:
		return Range{From: NewDate(today.Year(), 1, 1), To: today.EndOfMonth()}
	case AllTime:
		return Range{From: allTimeFrom, To: allTimeTo}
	case Custom:
		return Range{}
	default:
		panic("unknown filter period")
	}
}

func (p FilterPeriod) String() string {
	switch p {
	case ThisMonth:
		return "this_month"
	case LastMonth:
		return "last_month"
	case Last3Months:
		return "last_3_months"
	case ThisYear:
		return "this_year"
	case AllTime:
		return "all_time"
	case Custom:
		return "custom"
	default:
		return "period"
	}
}

// ParseFilterPeriod parses a string into a FilterPeriod.
func ParseFilterPeriod(s string) (FilterPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "this_month", "month":
		return ThisMonth, nil
	case "last_month":
		return LastMonth, nil
	case "last_3_months", "quarter":
		return Last3Months, nil
	case "this_year", "year":
		return ThisYear, nil
	case "all_time", "all", "":
		return AllTime, nil
	case "custom":
		return Custom, nil
	default:
		return AllTime, fmt.Errorf("unknown period %q", s)
	}
}
