package finance

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsZero returns true if neither boundary is set.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Months returns an iterator that yields the first day of each calendar month
// the range touches, in chronological order.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for m := r.From.StartOfMonth(); !m.After(r.To); m = m.AddMonth(1) {
			if !yield(m) {
				return
			}
		}
	}
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
