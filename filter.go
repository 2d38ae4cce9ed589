package finance

import (
	"fmt"
	"strings"
)

// TypeFilter narrows records by transactional type.
type TypeFilter string

const (
	TypeAll        TypeFilter = "all"
	TypeIncome     TypeFilter = "income"
	TypeExpense    TypeFilter = "expense"
	TypeInvestment TypeFilter = "investment"
)

// ParseTypeFilter parses a string into a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return TypeAll, nil
	case "income":
		return TypeIncome, nil
	case "expense":
		return TypeExpense, nil
	case "investment":
		return TypeInvestment, nil
	default:
		return "", fmt.Errorf("unknown type filter %q", s)
	}
}

// Filter is the global filter configuration shared by every view. The zero
// value is not the default configuration; use NewFilter.
//
// All active dimensions compose with AND. The web dashboard this replaces
// let a non-empty search short-circuit the amount and type checks through an
// early return; that was a defect, not a contract, and is not reproduced
// here.
type Filter struct {
	Period    FilterPeriod
	DateRange Range
	Type      TypeFilter
	Search    string
	MinAmount *Money
	MaxAmount *Money
}

// NewFilter returns the canonical default filter: all time, all types, no
// search, no amount bounds.
func NewFilter() Filter {
	return Filter{Period: AllTime, Type: TypeAll}
}

// Reset restores the canonical defaults.
func (f *Filter) Reset() { *f = NewFilter() }

// SetPeriod selects a period. For any non-custom period the explicit date
// range is discarded; Custom keeps the previously chosen range untouched.
func (f *Filter) SetPeriod(p FilterPeriod) {
	f.Period = p
	if p != Custom {
		f.DateRange = Range{}
	}
}

// SetRange sets an explicit date range and switches the period to Custom.
func (f *Filter) SetRange(r Range) {
	f.Period = Custom
	f.DateRange = r
}

// SetAmountRange sets inclusive bounds on the absolute record amount. Nil
// means unbounded on that side.
func (f *Filter) SetAmountRange(min, max *Money) {
	f.MinAmount = min
	f.MaxAmount = max
}

// Window resolves the effective [from, to] interval for the filter, anchored
// to the given day. Custom uses the explicit range verbatim; an unset custom
// range falls back to all time.
func (f Filter) Window(today Date) Range {
	if f.Period == Custom {
		if f.DateRange.IsZero() {
			return AllTime.Range(today)
		}
		return f.DateRange
	}
	return f.Period.Range(today)
}

// Matches reports whether the transaction passes every active filter
// dimension, anchored to the given day.
func (f Filter) Matches(today Date, t Transaction) bool {
	if !f.Window(today).Contains(t.Date) {
		return false
	}
	switch f.Type {
	case TypeIncome:
		if t.Type != Income {
			return false
		}
	case TypeExpense:
		if t.Type != Expense {
			return false
		}
	case TypeInvestment:
		// Plain transactions are never of investment type.
		return false
	}
	if !f.matchesAmount(t.Amount) {
		return false
	}
	return f.matchesSearch(t.Description, t.Category)
}

// Apply evaluates the filter over a transaction slice. Idempotent: filtering
// a filtered result yields the same set.
func (f Filter) Apply(today Date, transactions []Transaction) []Transaction {
	var out []Transaction
	for _, t := range transactions {
		if f.Matches(today, t) {
			out = append(out, t)
		}
	}
	return out
}

// matchesAmount checks the inclusive bounds against the absolute amount.
func (f Filter) matchesAmount(amount Money) bool {
	abs := amount.Abs()
	if f.MinAmount != nil && abs.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && abs.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match over the given fields,
// passing when any field contains the search text. An empty search matches
// everything.
func (f Filter) matchesSearch(fields ...string) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
