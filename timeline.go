package finance

import (
	"fmt"
	"sort"
	"strings"
)

// EventKind identifies the source collection a timeline event came from.
type EventKind string

const (
	KindTransaction  EventKind = "transaction"
	KindFixedExpense EventKind = "fixed_expense"
	KindSupport      EventKind = "support"
	KindInvestment   EventKind = "investment_entry"
)

// EventStatus tells whether a timeline event is settled, awaited, or a
// synthesized future projection.
type EventStatus string

const (
	StatusPaid      EventStatus = "paid"
	StatusPending   EventStatus = "pending"
	StatusProjected EventStatus = "projected"
)

// Event is one entry of the unified timeline. Each source kind has its own
// concrete type carrying the strongly-typed original record, so consumers can
// type-switch instead of inspecting an untyped payload.
//
// Amount is signed: negative is an outflow from liquid funds.
type Event interface {
	ID() string
	When() Date
	Kind() EventKind
	Title() string
	Amount() Money
	Category() string
	Status() EventStatus
}

// TransactionEvent is a recorded transaction on the timeline.
type TransactionEvent struct {
	Transaction Transaction
}

func (e TransactionEvent) ID() string       { return e.Transaction.ID }
func (e TransactionEvent) When() Date       { return e.Transaction.Date }
func (e TransactionEvent) Kind() EventKind  { return KindTransaction }
func (e TransactionEvent) Title() string    { return e.Transaction.Description }
func (e TransactionEvent) Amount() Money    { return e.Transaction.Signed() }
func (e TransactionEvent) Category() string { return e.Transaction.Category }
func (e TransactionEvent) Status() EventStatus {
	if e.Transaction.Status == Pending {
		return StatusPending
	}
	return StatusPaid
}

// InvestmentFlow is an investment ledger entry on the timeline.
// Contributions are negative (cash leaving liquid funds into the asset),
// withdrawals positive (cash returning).
type InvestmentFlow struct {
	InvestmentName string
	Entry          InvestmentEntry
}

func (e InvestmentFlow) ID() string      { return e.Entry.ID }
func (e InvestmentFlow) When() Date      { return e.Entry.Date }
func (e InvestmentFlow) Kind() EventKind { return KindInvestment }
func (e InvestmentFlow) Title() string   { return "Investimento: " + e.InvestmentName }
func (e InvestmentFlow) Amount() Money {
	if e.Entry.Type == Withdrawal {
		return e.Entry.Amount
	}
	return e.Entry.Amount.Neg()
}
func (e InvestmentFlow) Category() string    { return "Investimento" }
func (e InvestmentFlow) Status() EventStatus { return StatusPaid }

// SupportEvent is an inbound support deposit, synthesized on the first day of
// its month.
type SupportEvent struct {
	Support FinancialSupport
}

func (e SupportEvent) ID() string          { return e.Support.ID }
func (e SupportEvent) When() Date          { return e.Support.Month.First() }
func (e SupportEvent) Kind() EventKind     { return KindSupport }
func (e SupportEvent) Title() string       { return "Apoio Financeiro" }
func (e SupportEvent) Amount() Money       { return e.Support.Amount }
func (e SupportEvent) Category() string    { return "Renda Extra" }
func (e SupportEvent) Status() EventStatus { return StatusPaid }

// ProjectedBill is a fixed expense projected onto a future due date. It is
// synthesized, never persisted.
type ProjectedBill struct {
	Expense FixedExpense
	Due     Date
}

func (e ProjectedBill) ID() string          { return fmt.Sprintf("proj-%s-%s", e.Expense.ID, e.Due) }
func (e ProjectedBill) When() Date          { return e.Due }
func (e ProjectedBill) Kind() EventKind     { return KindFixedExpense }
func (e ProjectedBill) Title() string       { return e.Expense.Name }
func (e ProjectedBill) Amount() Money       { return e.Expense.Amount.Neg() }
func (e ProjectedBill) Category() string    { return e.Expense.Category }
func (e ProjectedBill) Status() EventStatus { return StatusProjected }

// BuildTimeline merges the four source collections into one chronologically
// ordered event stream, newest first, then applies the global filter.
//
// Fixed expenses are projected month by month from today's month up to the
// filter's explicit range end, or twelve months out when the filter does not
// bound the future (all time). Only due dates strictly after today are
// emitted; the past is covered by recorded transactions, never back-filled.
func BuildTimeline(state *State, f Filter, today Date) []Event {
	var events []Event

	for _, t := range state.Transactions {
		events = append(events, TransactionEvent{Transaction: t})
	}
	for _, inv := range state.Investments {
		for _, entry := range inv.History {
			events = append(events, InvestmentFlow{InvestmentName: inv.Name, Entry: entry})
		}
	}
	for _, sup := range state.FinancialSupport {
		events = append(events, SupportEvent{Support: sup})
	}
	events = append(events, projectBills(state.FixedExpenses, f, today)...)

	// Newest first; ties break on kind then id so the order is deterministic.
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.When() != b.When() {
			return a.When().After(b.When())
		}
		if a.Kind() != b.Kind() {
			return a.Kind() < b.Kind()
		}
		return a.ID() < b.ID()
	})

	var out []Event
	for _, e := range events {
		if f.matchesEvent(today, e) {
			out = append(out, e)
		}
	}
	return out
}

// projectBills emits projected events for every fixed expense in every month
// of the projection horizon, clamping the due day to short months.
func projectBills(expenses []FixedExpense, f Filter, today Date) []Event {
	horizon := f.Window(today).To
	if horizon == allTimeTo || horizon.Before(today) {
		horizon = today.AddMonth(12)
	}

	var events []Event
	for month := range (Range{From: today, To: horizon}).Months() {
		for _, e := range expenses {
			due := e.DueIn(month)
			if due.After(today) && !due.After(horizon) {
				events = append(events, ProjectedBill{Expense: e, Due: due})
			}
		}
	}
	return events
}

// matchesEvent applies the timeline's view of the global filter: a strict
// date window, the type mapping by sign and kind, and the search gate over
// title and category. All active dimensions compose with AND (see Filter).
func (f Filter) matchesEvent(today Date, e Event) bool {
	if !f.Window(today).Contains(e.When()) {
		return false
	}
	switch f.Type {
	case TypeIncome:
		if e.Amount().IsNegative() {
			return false
		}
	case TypeExpense:
		if !e.Amount().IsNegative() {
			return false
		}
	case TypeInvestment:
		if e.Kind() != KindInvestment {
			return false
		}
	}
	return f.matchesSearch(e.Title(), e.Category())
}

// Ensure every variant satisfies Event.
var (
	_ Event = TransactionEvent{}
	_ Event = InvestmentFlow{}
	_ Event = SupportEvent{}
	_ Event = ProjectedBill{}
)

// EventsByMonth groups an ordered event stream by calendar month, keeping the
// incoming order within each group. Keys are "YYYY-MM" month keys; the
// returned key slice preserves first-seen order.
func EventsByMonth(events []Event) (keys []MonthKey, groups map[MonthKey][]Event) {
	groups = make(map[MonthKey][]Event)
	for _, e := range events {
		k := e.When().Key()
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], e)
	}
	return keys, groups
}

// String renders a compact one-line description, mostly for debugging.
func EventString(e Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %q %s", e.When(), e.Kind(), e.Title(), e.Amount())
	return b.String()
}
