package finance

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	s := DefaultState()
	s.Transactions = []Transaction{
		{ID: "t1", Type: Income, Amount: M(5000), Date: MustParseDate("2024-03-05"), Category: "salario", Description: "Salário", Status: Paid},
		{ID: "t2", Type: Expense, Amount: M(1200), Date: MustParseDate("2024-03-10"), Category: "alimentacao", Description: "Mercado", Status: Paid},
		{ID: "t3", Type: Expense, Amount: M(300), Date: MustParseDate("2024-03-12"), Category: "lazer", Description: "Show", Status: Pending},
		{ID: "t4", Type: Expense, Amount: M(500), Date: MustParseDate("2024-02-10"), Category: "outros", Description: "Fora da janela", Status: Paid},
	}
	s.FinancialSupport = []FinancialSupport{
		{ID: "s1", Amount: M(800), Month: "2024-03"},
		{ID: "s2", Amount: M(800), Month: "2024-01"},
	}
	s.Investments = []Investment{
		{ID: "i1", Name: "CDB", Type: FixedIncome, CurrentAmount: M(2000)},
	}

	f := NewFilter()
	f.SetPeriod(ThisMonth)
	sum := NewSummary(s, f, today)

	for _, tt := range []struct {
		name string
		got  Money
		want Money
	}{
		{"income", sum.TotalIncome, M(5000)},
		{"expenses", sum.TotalExpenses, M(1500)},
		{"balance", sum.Balance, M(3500)},
		{"pending", sum.PendingExpenses, M(300)},
		{"support in window", sum.SupportTotal, M(800)},
		{"invested", sum.TotalInvested, M(2000)},
	} {
		if !tt.got.Equal(tt.want) {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
	if sum.Currency != "BRL" {
		t.Errorf("currency = %q, want BRL", sum.Currency)
	}
}

func TestNewSummary_EmptyStateIsNeutral(t *testing.T) {
	s := DefaultState()
	sum := NewSummary(s, NewFilter(), NewDate(2024, time.March, 15))
	if !sum.TotalIncome.IsZero() || !sum.TotalExpenses.IsZero() || !sum.Balance.IsZero() {
		t.Errorf("empty state produced non-zero aggregates: %+v", sum)
	}
}

func TestBudgetReport(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	s := DefaultState()
	s.Budgets = []Budget{
		{Category: "alimentacao", Limit: M(1200), Period: "monthly"},
		{Category: "lazer", Limit: M(400), Period: "monthly"},
	}
	s.Transactions = []Transaction{
		{ID: "t1", Type: Expense, Amount: M(600), Date: MustParseDate("2024-03-02"), Category: "alimentacao", Status: Paid},
		{ID: "t2", Type: Expense, Amount: M(300), Date: MustParseDate("2024-03-09"), Category: "alimentacao", Status: Paid},
		{ID: "t3", Type: Expense, Amount: M(500), Date: MustParseDate("2024-03-10"), Category: "lazer", Status: Paid},
		{ID: "t4", Type: Expense, Amount: M(999), Date: MustParseDate("2024-02-10"), Category: "lazer", Status: Paid},
		{ID: "t5", Type: Income, Amount: M(100), Date: MustParseDate("2024-03-11"), Category: "lazer", Status: Paid},
	}

	report := BudgetReport(s, today)
	if len(report) != 2 {
		t.Fatalf("report lines = %d, want 2", len(report))
	}

	food := report[0]
	if food.Category != "alimentacao" || !food.Spent.Equal(M(900)) || !food.Remaining.Equal(M(300)) || food.Over() {
		t.Errorf("alimentacao line = %+v", food)
	}
	if food.Usage < 0.74 || food.Usage > 0.76 {
		t.Errorf("alimentacao usage = %f, want 0.75", food.Usage)
	}

	leisure := report[1]
	if leisure.Category != "lazer" || !leisure.Spent.Equal(M(500)) || !leisure.Over() {
		t.Errorf("lazer line = %+v", leisure)
	}
}

func TestAllocation(t *testing.T) {
	investments := []Investment{
		{ID: "i1", Name: "PETR4", Type: Stocks, CurrentAmount: M(6000)},
		{ID: "i2", Name: "VALE3", Type: Stocks, CurrentAmount: M(1000)},
		{ID: "i3", Name: "BTC", Type: Crypto, CurrentAmount: M(1000)},
	}

	slices := Allocation(investments)
	if len(slices) != 2 {
		t.Fatalf("allocation slices = %d, want 2", len(slices))
	}
	top := slices[0]
	if top.Type != Stocks || !top.Amount.Equal(M(7000)) || top.Count != 2 {
		t.Errorf("top slice = %+v", top)
	}
	if top.Share < 0.874 || top.Share > 0.876 {
		t.Errorf("stocks share = %f, want 0.875", top.Share)
	}

	if got := Allocation(nil); len(got) != 0 {
		t.Errorf("empty portfolio allocation = %v, want empty", got)
	}
}
