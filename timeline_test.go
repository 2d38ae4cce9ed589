package finance

import (
	"strings"
	"testing"
	"time"
)

func timelineState() *State {
	s := DefaultState()
	s.FixedExpenses = []FixedExpense{
		{ID: "f1", Name: "Aluguel", Amount: M(2500), DayDue: 5, Category: "aluguel", AutoTrack: true},
		{ID: "f2", Name: "Internet", Amount: M(50), DayDue: 31, Category: "aluguel", AutoTrack: true},
	}
	s.Transactions = []Transaction{
		{ID: "t1", Type: Income, Amount: M(5000), Date: MustParseDate("2024-03-05"), Category: "salario", Description: "Salário", Status: Paid},
		{ID: "t2", Type: Expense, Amount: M(120), Date: MustParseDate("2024-03-10"), Category: "alimentacao", Description: "Mercado", Status: Pending},
	}
	s.FinancialSupport = []FinancialSupport{
		{ID: "s1", Amount: M(800), Month: "2024-03"},
	}
	s.Investments = []Investment{
		{ID: "i1", Name: "PETR4", Type: Stocks, CurrentAmount: M(3000), History: []InvestmentEntry{
			{ID: "e1", Date: MustParseDate("2024-03-08"), Amount: M(1000), Type: Contribution},
			{ID: "e2", Date: MustParseDate("2024-03-12"), Amount: M(300), Type: Withdrawal},
		}},
	}
	return s
}

func TestBuildTimeline_SignConventions(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	f := NewFilter()
	f.SetRange(NewRange(MustParseDate("2024-03-01"), MustParseDate("2024-03-14")))

	events := BuildTimeline(timelineState(), f, today)

	byID := make(map[string]Event)
	for _, e := range events {
		byID[e.ID()] = e
	}

	tests := []struct {
		id     string
		kind   EventKind
		amount Money
		status EventStatus
		date   Date
	}{
		{"t1", KindTransaction, M(5000), StatusPaid, MustParseDate("2024-03-05")},
		{"t2", KindTransaction, M(-120), StatusPending, MustParseDate("2024-03-10")},
		{"e1", KindInvestment, M(-1000), StatusPaid, MustParseDate("2024-03-08")},
		{"e2", KindInvestment, M(300), StatusPaid, MustParseDate("2024-03-12")},
		{"s1", KindSupport, M(800), StatusPaid, MustParseDate("2024-03-01")},
	}
	for _, tt := range tests {
		e, ok := byID[tt.id]
		if !ok {
			t.Fatalf("event %q missing from timeline", tt.id)
		}
		if e.Kind() != tt.kind || !e.Amount().Equal(tt.amount) || e.Status() != tt.status || e.When() != tt.date {
			t.Errorf("event %q = (%s %s %s %s), want (%s %s %s %s)",
				tt.id, e.Kind(), e.Amount(), e.Status(), e.When(), tt.kind, tt.amount, tt.status, tt.date)
		}
	}
}

func TestBuildTimeline_SortedNewestFirst(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	events := BuildTimeline(timelineState(), NewFilter(), today)
	for i := 1; i < len(events); i++ {
		if events[i].When().After(events[i-1].When()) {
			t.Fatalf("events out of order at %d: %s before %s", i, events[i-1].When(), events[i].When())
		}
	}
}

func TestBuildTimeline_ProjectionsAreStrictlyFuture(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	events := BuildTimeline(timelineState(), NewFilter(), today)

	var projected []Event
	for _, e := range events {
		if e.Status() == StatusProjected {
			projected = append(projected, e)
			if !e.When().After(today) {
				t.Errorf("projected event %q dated %s, on or before today %s", e.ID(), e.When(), today)
			}
			if !e.Amount().IsNegative() {
				t.Errorf("projected event %q has non-negative amount %s", e.ID(), e.Amount())
			}
		}
	}
	if len(projected) == 0 {
		t.Fatal("no projected events emitted")
	}

	// Aluguel (due day 5) is already past in March; its first projection is April.
	for _, e := range projected {
		bill, ok := e.(ProjectedBill)
		if !ok {
			t.Fatalf("projected event %q is not a ProjectedBill", e.ID())
		}
		if bill.Expense.ID == "f1" && bill.Due.Month() == time.March {
			t.Errorf("past-due March projection emitted for f1: %s", bill.Due)
		}
	}
}

func TestBuildTimeline_ProjectionClampsShortMonths(t *testing.T) {
	today := NewDate(2024, time.January, 20)
	f := NewFilter()
	f.SetRange(NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-04-30")))

	events := BuildTimeline(timelineState(), f, today)

	var dues []Date
	for _, e := range events {
		if bill, ok := e.(ProjectedBill); ok && bill.Expense.ID == "f2" {
			dues = append(dues, bill.Due)
		}
	}
	want := map[Date]bool{
		NewDate(2024, time.January, 31):  true,
		NewDate(2024, time.February, 29): true, // leap year clamp
		NewDate(2024, time.March, 31):    true,
		NewDate(2024, time.April, 30):    true, // 30-day clamp
	}
	if len(dues) != len(want) {
		t.Fatalf("projected dues = %v, want %d distinct dates", dues, len(want))
	}
	for _, d := range dues {
		if !want[d] {
			t.Errorf("unexpected projected due date %s", d)
		}
	}
}

func TestBuildTimeline_ProjectionClampsNonLeapFebruary(t *testing.T) {
	today := NewDate(2023, time.January, 20)
	f := NewFilter()
	f.SetRange(NewRange(MustParseDate("2023-02-01"), MustParseDate("2023-02-28")))

	events := BuildTimeline(timelineState(), f, today)
	var found bool
	for _, e := range events {
		if bill, ok := e.(ProjectedBill); ok && bill.Expense.ID == "f2" {
			found = true
			if bill.Due != NewDate(2023, time.February, 28) {
				t.Errorf("due = %s, want 2023-02-28", bill.Due)
			}
		}
	}
	if !found {
		t.Fatal("no February projection for day-31 expense")
	}
}

func TestBuildTimeline_TypeFilterMapping(t *testing.T) {
	today := NewDate(2024, time.March, 15)

	tests := []struct {
		name   string
		typ    TypeFilter
		check  func(Event) bool
		reason string
	}{
		{"income keeps non-negative amounts", TypeIncome, func(e Event) bool { return !e.Amount().IsNegative() }, "negative amount"},
		{"expense keeps negative amounts", TypeExpense, func(e Event) bool { return e.Amount().IsNegative() }, "non-negative amount"},
		{"investment keeps only investment entries", TypeInvestment, func(e Event) bool { return e.Kind() == KindInvestment }, "wrong kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter()
			f.Type = tt.typ
			events := BuildTimeline(timelineState(), f, today)
			if len(events) == 0 {
				t.Fatal("no events passed the type filter")
			}
			for _, e := range events {
				if !tt.check(e) {
					t.Errorf("event %q: %s", e.ID(), tt.reason)
				}
			}
		})
	}
}

func TestBuildTimeline_SearchComposesWithType(t *testing.T) {
	today := NewDate(2024, time.March, 15)

	f := NewFilter()
	f.Search = "investimento"
	events := BuildTimeline(timelineState(), f, today)
	if len(events) != 2 {
		t.Fatalf("search alone: %d events, want the 2 investment flows", len(events))
	}

	// The withdrawal is positive, the contribution negative; with a type
	// filter stacked on the search only one side survives.
	f.Type = TypeExpense
	events = BuildTimeline(timelineState(), f, today)
	if len(events) != 1 || events[0].ID() != "e1" {
		t.Fatalf("search+expense: got %d events, want only e1", len(events))
	}
	for _, e := range events {
		if !strings.Contains(strings.ToLower(e.Title()), "investimento") {
			t.Errorf("event %q does not match the search", e.ID())
		}
	}
}

func TestEventsByMonth(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	f := NewFilter()
	f.SetRange(NewRange(MustParseDate("2024-03-01"), MustParseDate("2024-04-30")))

	keys, groups := EventsByMonth(BuildTimeline(timelineState(), f, today))
	if len(keys) == 0 {
		t.Fatal("no month groups")
	}
	total := 0
	for _, k := range keys {
		total += len(groups[k])
		for _, e := range groups[k] {
			if e.When().Key() != k {
				t.Errorf("event %q grouped under %s but dated %s", e.ID(), k, e.When())
			}
		}
	}
	if keys[0] != "2024-04" {
		t.Errorf("first group = %s, want 2024-04 (newest first)", keys[0])
	}
}
