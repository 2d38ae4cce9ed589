package renderer

import (
	"bytes"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the financial summary for a filter window.
func SummaryMarkdown(s *finance.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Summary %s", s.Window))

	table := md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Total Income", s.TotalIncome.Display(s.Currency)},
			{"Total Expenses", s.TotalExpenses.Display(s.Currency)},
			{"Balance", s.Balance.SignedDisplay(s.Currency)},
			{"Pending Expenses", s.PendingExpenses.Display(s.Currency)},
			{"Support Received", s.SupportTotal.Display(s.Currency)},
			{"Total Invested", s.TotalInvested.Display(s.Currency)},
		},
	}
	doc.Table(table)

	return doc.String()
}

// BudgetMarkdown renders the per-category budget usage for the current month.
func BudgetMarkdown(usages []finance.BudgetUsage, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budgets")
	if len(usages) == 0 {
		doc.PlainText("No budgets configured.")
		return doc.String()
	}

	rows := make([][]string, 0, len(usages))
	for _, u := range usages {
		state := "ok"
		if u.Over() {
			state = "over"
		}
		rows = append(rows, []string{
			u.Category,
			u.Spent.Display(currency),
			u.Limit.Display(currency),
			fmt.Sprintf("%.0f%%", u.Usage*100),
			state,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Spent", "Limit", "Usage", "State"},
		Rows:   rows,
	})

	return doc.String()
}

// AllocationMarkdown renders the portfolio split by asset class.
func AllocationMarkdown(slices []finance.AllocationSlice, score int, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Allocation")
	if len(slices) == 0 {
		doc.PlainText("No investments yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, []string{
			s.Type.Label(),
			s.Amount.Display(currency),
			fmt.Sprintf("%.1f%%", s.Share*100),
			fmt.Sprintf("%d", s.Count),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset Class", "Amount", "Share", "Positions"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Diversification score: %d/100", score))

	return doc.String()
}
