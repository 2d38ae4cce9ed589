package finance

import (
	"strings"
	"testing"
	"time"
)

func findInsight(insights []Insight, title string) (Insight, bool) {
	for _, in := range insights {
		if in.Title == title {
			return in, true
		}
	}
	return Insight{}, false
}

func TestInsights_RentDue(t *testing.T) {
	tests := []struct {
		name   string
		due    int
		day    int
		expect bool
	}{
		{"due today", 15, 15, true},
		{"due in three days", 18, 15, true},
		{"due in four days", 19, 15, false},
		{"already past", 10, 15, false},
		{"unset due date", 0, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.Settings.RentDueDate = tt.due
			today := NewDate(2024, time.March, tt.day)
			_, ok := findInsight(Insights(s, today), "Rent due soon")
			if ok != tt.expect {
				t.Errorf("rent warning fired = %v, want %v", ok, tt.expect)
			}
		})
	}
}

func TestInsights_EmergencyFund(t *testing.T) {
	tests := []struct {
		name     string
		invested Money
		goal     Money
		info     bool
		success  bool
	}{
		{"below 20 percent", M(500), M(5000), true, false},
		{"middle band is silent", M(2500), M(5000), false, false},
		{"goal reached", M(5000), M(5000), false, true},
		{"beyond goal", M(9000), M(5000), false, true},
		{"no goal set", M(500), M(0), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			s.Settings.EmergencyFundGoal = tt.goal
			s.Investments = []Investment{{ID: "i1", Name: "Reserva", Type: FixedIncome, CurrentAmount: tt.invested}}
			s.Settings.RentDueDate = 0 // keep the rent warning out of the way

			insights := Insights(s, NewDate(2024, time.March, 20))
			_, info := findInsight(insights, "Emergency fund")
			_, success := findInsight(insights, "Goal reached")
			if info != tt.info || success != tt.success {
				t.Errorf("info = %v success = %v, want %v %v", info, success, tt.info, tt.success)
			}
		})
	}
}

func TestInsights_ConcentrationWarning(t *testing.T) {
	s := DefaultState()
	s.Settings.RentDueDate = 0
	s.Settings.EmergencyFundGoal = M(0)
	s.Investments = []Investment{
		{ID: "i1", Name: "PETR4", Type: Stocks, CurrentAmount: M(6000)},
		{ID: "i2", Name: "VALE3", Type: Stocks, CurrentAmount: M(1000)},
		{ID: "i3", Name: "BTC", Type: Crypto, CurrentAmount: M(1000)},
	}

	in, ok := findInsight(Insights(s, NewDate(2024, time.March, 20)), "High concentration")
	if !ok {
		t.Fatal("concentration warning did not fire at 87.5%")
	}
	if !strings.Contains(in.Message, "stocks") {
		t.Errorf("warning does not name the stocks bucket: %q", in.Message)
	}

	// A single investment never triggers it, no matter how concentrated.
	s.Investments = s.Investments[:1]
	if _, ok := findInsight(Insights(s, NewDate(2024, time.March, 20)), "High concentration"); ok {
		t.Error("concentration warning fired for a single investment")
	}
}

func TestInsights_SavingsRate(t *testing.T) {
	today := NewDate(2024, time.March, 20)

	build := func(salary, expenses, fixed Money) *State {
		s := DefaultState()
		s.Settings.RentDueDate = 0
		s.Settings.EmergencyFundGoal = M(0)
		s.Settings.MonthlySalary = salary
		s.Transactions = []Transaction{
			{ID: "t1", Type: Expense, Amount: expenses, Date: MustParseDate("2024-03-10"), Category: "outros", Description: "Gastos", Status: Paid},
		}
		s.FixedExpenses = []FixedExpense{
			{ID: "f1", Name: "Fixos", Amount: fixed, DayDue: 5, Category: "outros"},
		}
		return s
	}

	tests := []struct {
		name    string
		state   *State
		success bool
		info    bool
	}{
		// salary 5000, expenses 3500 + fixed 800 -> rate 14%, in the silent band.
		{"fourteen percent is silent", build(M(5000), M(3500), M(800)), false, false},
		{"above twenty percent succeeds", build(M(5000), M(2000), M(800)), true, false},
		{"low positive rate nudges", build(M(5000), M(4000), M(850)), false, true},
		{"negative rate is silent", build(M(5000), M(5000), M(800)), false, false},
		{"no salary no insight", build(M(0), M(100), M(0)), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := Insights(tt.state, today)
			_, success := findInsight(insights, "Great savings rate")
			_, info := findInsight(insights, "Watch your spending")
			if success != tt.success || info != tt.info {
				t.Errorf("success = %v info = %v, want %v %v", success, info, tt.success, tt.info)
			}
		})
	}
}

func TestInsights_SavingsRateExcludesSupportAndOtherMonths(t *testing.T) {
	today := NewDate(2024, time.March, 20)
	s := DefaultState()
	s.Settings.RentDueDate = 0
	s.Settings.EmergencyFundGoal = M(0)
	s.Settings.MonthlySalary = M(5000)
	s.FixedExpenses = nil
	s.Transactions = []Transaction{
		{ID: "t1", Type: Expense, Amount: M(1000), Date: MustParseDate("2024-03-10"), Status: Paid},
		{ID: "t2", Type: Expense, Amount: M(4000), Date: MustParseDate("2024-03-12"), Status: Paid, PaidBySupport: true},
		{ID: "t3", Type: Expense, Amount: M(4000), Date: MustParseDate("2024-02-12"), Status: Paid},
	}

	// Only t1 counts: 1000 of 5000 spent, an 80% rate.
	if _, ok := findInsight(Insights(s, today), "Great savings rate"); !ok {
		t.Error("support-paid and other-month expenses leaked into the savings rate")
	}
}

func TestPortfolioScore(t *testing.T) {
	inv := func(n int, types ...InvestmentType) []Investment {
		out := make([]Investment, n)
		for i := range out {
			out[i] = Investment{ID: string(rune('a' + i)), Type: types[i%len(types)], CurrentAmount: M(100)}
		}
		return out
	}

	tests := []struct {
		name string
		in   []Investment
		want int
	}{
		{"empty portfolio scores zero", nil, 0},
		{"single asset", inv(1, Stocks), 62},                                            // 50 + 10 + 2
		{"two types three assets", inv(3, Stocks, Crypto), 76},                          // 50 + 20 + 6
		{"asset count bonus caps at 20", inv(15, Stocks), 80},                           // 50 + 10 + 20
		{"score caps at 100", inv(20, Stocks, Crypto, FIIs, Treasury, FixedIncome), 100}, // 50 + 50 + 20 -> clamp
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PortfolioScore(tt.in); got != tt.want {
				t.Errorf("PortfolioScore = %d, want %d", got, tt.want)
			}
		})
	}

	// Monotone in distinct types, count held fixed.
	prev := -1
	typePool := []InvestmentType{Stocks, Crypto, FIIs, Treasury, FixedIncome}
	for k := 1; k <= 5; k++ {
		score := PortfolioScore(inv(5, typePool[:k]...))
		if score < prev {
			t.Errorf("score decreased when adding a %dth type: %d < %d", k, score, prev)
		}
		if score < 0 || score > 100 {
			t.Errorf("score out of range: %d", score)
		}
		prev = score
	}
}
