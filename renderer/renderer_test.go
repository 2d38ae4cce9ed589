package renderer

import (
	"strings"
	"testing"

	finance "github.com/AdryannSanntos/controle-financeiro"
)

func TestSummaryMarkdown(t *testing.T) {
	s := &finance.Summary{
		Window:          finance.NewRange(finance.NewDate(2024, 3, 1), finance.NewDate(2024, 3, 31)),
		Currency:        "BRL",
		TotalIncome:     finance.M(5000),
		TotalExpenses:   finance.M(3200),
		Balance:         finance.M(1800),
		PendingExpenses: finance.M(400),
		SupportTotal:    finance.M(0),
		TotalInvested:   finance.M(10000),
	}
	got := SummaryMarkdown(s)
	for _, want := range []string{
		"# Financial Summary",
		"2024-03-01",
		"Total Income",
		"R$5.000,00",
		"R$3.200,00",
		"Balance",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}
}

func TestBudgetMarkdown(t *testing.T) {
	usages := []finance.BudgetUsage{
		{Category: "alimentacao", Limit: finance.M(1200), Spent: finance.M(900), Remaining: finance.M(300), Usage: 0.75},
		{Category: "lazer", Limit: finance.M(400), Spent: finance.M(450), Remaining: finance.M(-50), Usage: 1.125},
	}
	got := BudgetMarkdown(usages, "BRL")
	for _, want := range []string{"alimentacao", "75%", "lazer", "over", "113%"} {
		if !strings.Contains(got, want) {
			t.Errorf("budget report missing %q in:\n%s", want, got)
		}
	}

	if got := BudgetMarkdown(nil, "BRL"); !strings.Contains(got, "No budgets configured") {
		t.Errorf("empty budget report = %q", got)
	}
}

func TestAllocationMarkdown(t *testing.T) {
	slices := []finance.AllocationSlice{
		{Type: finance.Stocks, Amount: finance.M(7000), Share: 0.7, Count: 2},
		{Type: finance.FixedIncome, Amount: finance.M(3000), Share: 0.3, Count: 1},
	}
	got := AllocationMarkdown(slices, 90, "BRL")
	for _, want := range []string{"70.0%", "30.0%", "90/100", "R$7.000,00"} {
		if !strings.Contains(got, want) {
			t.Errorf("allocation missing %q in:\n%s", want, got)
		}
	}
}

func TestTimelineMarkdownGroupsByMonth(t *testing.T) {
	events := []finance.Event{
		finance.TransactionEvent{Transaction: finance.Transaction{
			ID: "t2", Type: finance.Expense, Amount: finance.M(80),
			Date: finance.NewDate(2024, 3, 10), Category: "lazer",
			Description: "Cinema", Status: finance.Paid,
		}},
		finance.TransactionEvent{Transaction: finance.Transaction{
			ID: "t1", Type: finance.Income, Amount: finance.M(5000),
			Date: finance.NewDate(2024, 2, 5), Category: "salario",
			Description: "Salário", Status: finance.Paid,
		}},
	}
	got := TimelineMarkdown(events, "BRL")
	march := strings.Index(got, "## 2024-03")
	feb := strings.Index(got, "## 2024-02")
	if march < 0 || feb < 0 || march > feb {
		t.Errorf("months out of order or missing:\n%s", got)
	}
	if !strings.Contains(got, "Cinema") || !strings.Contains(got, "-R$80,00") {
		t.Errorf("expense row missing:\n%s", got)
	}
}

func TestInsightsMarkdown(t *testing.T) {
	insights := []finance.Insight{
		{Type: finance.InsightWarning, Title: "Rent due soon", Message: "Aluguel vence em 2 dias."},
	}
	got := InsightsMarkdown(insights, 70)
	if !strings.Contains(got, "Rent due soon") || !strings.Contains(got, "70/100") {
		t.Errorf("insights report missing content:\n%s", got)
	}

	if got := InsightsMarkdown(nil, 0); !strings.Contains(got, "Nothing to report") {
		t.Errorf("empty insights = %q", got)
	}
}
