package renderer

import (
	"bytes"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	md "github.com/nao1215/markdown"
)

// TimelineMarkdown renders the unified event stream grouped by month, newest
// month first (the events come in already sorted newest first).
func TimelineMarkdown(events []finance.Event, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Timeline")
	if len(events) == 0 {
		doc.PlainText("No activity for this filter.")
		return doc.String()
	}

	keys, groups := finance.EventsByMonth(events)
	for _, key := range keys {
		doc.H2(key.String())
		rows := make([][]string, 0, len(groups[key]))
		for _, e := range groups[key] {
			rows = append(rows, []string{
				e.When().String(),
				e.Title(),
				e.Category(),
				e.Amount().SignedDisplay(currency),
				string(e.Status()),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Description", "Category", "Amount", "Status"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// TransactionsMarkdown renders a filtered transaction list as a table.
func TransactionsMarkdown(txs []finance.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			t.ID,
			t.Date.String(),
			string(t.Type),
			t.Category,
			t.Description,
			t.Signed().SignedDisplay(currency),
			string(t.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Type", "Category", "Description", "Amount", "Status"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d transaction(s).", len(txs)))

	return doc.String()
}
