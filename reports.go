package finance

import "sort"

// Summary is an at-a-glance view of the filtered window: money in, money
// out, and where the balance stands.
type Summary struct {
	Window          Range
	Currency        string
	TotalIncome     Money
	TotalExpenses   Money
	Balance         Money
	PendingExpenses Money
	SupportTotal    Money
	TotalInvested   Money
}

// NewSummary computes the summary aggregates for a state snapshot under the
// given filter, anchored to the given day.
func NewSummary(state *State, f Filter, today Date) *Summary {
	s := &Summary{
		Window:        f.Window(today),
		Currency:      state.Settings.Currency,
		TotalInvested: state.TotalInvested(),
	}

	for _, t := range f.Apply(today, state.Transactions) {
		switch t.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			if t.Status == Pending {
				s.PendingExpenses = s.PendingExpenses.Add(t.Amount)
			}
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)

	for _, sup := range state.FinancialSupport {
		if s.Window.Contains(sup.Month.First()) {
			s.SupportTotal = s.SupportTotal.Add(sup.Amount)
		}
	}
	return s
}

// BudgetUsage is one budget line with the month's spending measured against
// its limit.
type BudgetUsage struct {
	Category  string
	Limit     Money
	Spent     Money
	Remaining Money
	Usage     float64 // spent/limit, 1.0 = fully used
}

// Over reports whether spending exceeded the limit.
func (b BudgetUsage) Over() bool { return b.Spent.GreaterThan(b.Limit) }

// BudgetReport measures this month's expense transactions against each
// budget, ordered by category.
func BudgetReport(state *State, today Date) []BudgetUsage {
	month := today.Key()
	spent := make(map[string]Money)
	for _, t := range state.Transactions {
		if t.Type == Expense && t.Date.Key() == month {
			spent[t.Category] = spent[t.Category].Add(t.Amount)
		}
	}

	report := make([]BudgetUsage, 0, len(state.Budgets))
	for _, b := range state.Budgets {
		u := BudgetUsage{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     spent[b.Category],
			Remaining: b.Limit.Sub(spent[b.Category]),
		}
		u.Usage = u.Spent.Ratio(b.Limit)
		report = append(report, u)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Category < report[j].Category })
	return report
}

// AllocationSlice is the invested total of one asset class.
type AllocationSlice struct {
	Type   InvestmentType
	Amount Money
	Share  float64 // fraction of the total, 1.0 = everything
	Count  int
}

// Allocation breaks the portfolio down by asset class, largest bucket first.
func Allocation(investments []Investment) []AllocationSlice {
	total := M(0)
	buckets := make(map[InvestmentType]*AllocationSlice)
	for _, inv := range investments {
		total = total.Add(inv.CurrentAmount)
		slice, ok := buckets[inv.Type]
		if !ok {
			slice = &AllocationSlice{Type: inv.Type}
			buckets[inv.Type] = slice
		}
		slice.Amount = slice.Amount.Add(inv.CurrentAmount)
		slice.Count++
	}

	out := make([]AllocationSlice, 0, len(buckets))
	for _, slice := range buckets {
		slice.Share = slice.Amount.Ratio(total)
		out = append(out, *slice)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Type < out[j].Type
	})
	return out
}
