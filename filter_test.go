package finance

import (
	"reflect"
	"testing"
	"time"
)

func testTransactions() []Transaction {
	return []Transaction{
		{ID: "t1", Type: Income, Amount: M(5000), Date: MustParseDate("2024-03-05"), Category: "salario", Description: "Salário", Status: Paid},
		{ID: "t2", Type: Expense, Amount: M(120), Date: MustParseDate("2024-03-10"), Category: "alimentacao", Description: "Mercado", Status: Paid},
		{ID: "t3", Type: Expense, Amount: M(60), Date: MustParseDate("2024-02-20"), Category: "transporte", Description: "Uber", Status: Paid},
		{ID: "t4", Type: Expense, Amount: M(2500), Date: MustParseDate("2024-03-05"), Category: "aluguel", Description: "Aluguel Março", Status: Pending},
		{ID: "t5", Type: Income, Amount: M(800), Date: MustParseDate("2023-12-15"), Category: "freela", Description: "Freela site", Status: Paid},
	}
}

func ids(ts []Transaction) []string {
	var out []string
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	minAmount := M(100)
	maxAmount := M(1000)

	tests := []struct {
		name  string
		setup func(f *Filter)
		want  []string
	}{
		{
			name:  "default passes everything",
			setup: func(f *Filter) {},
			want:  []string{"t1", "t2", "t3", "t4", "t5"},
		},
		{
			name:  "this month",
			setup: func(f *Filter) { f.SetPeriod(ThisMonth) },
			want:  []string{"t1", "t2", "t4"},
		},
		{
			name:  "last month",
			setup: func(f *Filter) { f.SetPeriod(LastMonth) },
			want:  []string{"t3"},
		},
		{
			name:  "this year excludes december",
			setup: func(f *Filter) { f.SetPeriod(ThisYear) },
			want:  []string{"t1", "t2", "t3", "t4"},
		},
		{
			name:  "custom range",
			setup: func(f *Filter) { f.SetRange(NewRange(MustParseDate("2024-03-01"), MustParseDate("2024-03-07"))) },
			want:  []string{"t1", "t4"},
		},
		{
			name:  "income only",
			setup: func(f *Filter) { f.Type = TypeIncome },
			want:  []string{"t1", "t5"},
		},
		{
			name:  "investment type never matches plain transactions",
			setup: func(f *Filter) { f.Type = TypeInvestment },
			want:  nil,
		},
		{
			name:  "amount bounds are inclusive",
			setup: func(f *Filter) { f.SetAmountRange(&minAmount, &maxAmount) },
			want:  []string{"t2", "t5"},
		},
		{
			name:  "search matches description case-insensitively",
			setup: func(f *Filter) { f.Search = "mercado" },
			want:  []string{"t2"},
		},
		{
			name:  "search matches category",
			setup: func(f *Filter) { f.Search = "transporte" },
			want:  []string{"t3"},
		},
		{
			name: "search composes with type, not overrides it",
			setup: func(f *Filter) {
				f.Type = TypeIncome
				f.Search = "aluguel"
			},
			want: nil,
		},
		{
			name: "search composes with amount bounds",
			setup: func(f *Filter) {
				f.SetAmountRange(&minAmount, nil)
				f.Search = "uber"
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter()
			tt.setup(&f)
			got := ids(f.Apply(today, testTransactions()))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_ApplyIsIdempotent(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	f := NewFilter()
	f.SetPeriod(ThisMonth)
	f.Type = TypeExpense

	once := f.Apply(today, testTransactions())
	twice := f.Apply(today, once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second application changed the result: %v != %v", ids(once), ids(twice))
	}
}

func TestFilter_Reset(t *testing.T) {
	today := NewDate(2024, time.March, 15)
	minAmount := M(10)

	f := NewFilter()
	f.SetPeriod(ThisMonth)
	f.Type = TypeExpense
	f.Search = "uber"
	f.SetAmountRange(&minAmount, nil)

	f.Reset()

	if f.Period != AllTime || f.Type != TypeAll || f.Search != "" || f.MinAmount != nil || f.MaxAmount != nil {
		t.Fatalf("Reset() left a non-default filter: %+v", f)
	}
	all := testTransactions()
	if got := f.Apply(today, all); len(got) != len(all) {
		t.Errorf("reset filter returned %d of %d records", len(got), len(all))
	}
}

func TestFilter_SetPeriodKeepsCustomRange(t *testing.T) {
	f := NewFilter()
	r := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-01-31"))
	f.SetRange(r)
	if f.Period != Custom {
		t.Fatalf("SetRange did not switch period to custom: %v", f.Period)
	}
	f.SetPeriod(Custom)
	if f.DateRange != r {
		t.Errorf("selecting custom discarded the explicit range: %v", f.DateRange)
	}
	f.SetPeriod(ThisMonth)
	if !f.DateRange.IsZero() {
		t.Errorf("selecting a non-custom period kept the explicit range: %v", f.DateRange)
	}
}
