package renderer

import (
	"bytes"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	md "github.com/nao1215/markdown"
)

// InsightsMarkdown renders the advisory messages as a bulleted report.
func InsightsMarkdown(insights []finance.Insight, score int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Insights")
	if len(insights) == 0 {
		doc.PlainText("Nothing to report. Keep it up.")
	} else {
		items := make([]string, 0, len(insights))
		for _, in := range insights {
			items = append(items, fmt.Sprintf("%s **%s**: %s", marker(in.Type), in.Title, in.Message))
		}
		doc.BulletList(items...)
	}

	doc.H2("Portfolio Health")
	doc.PlainText(fmt.Sprintf("Diversification score: %d/100", score))

	return doc.String()
}

func marker(t finance.InsightType) string {
	switch t {
	case finance.InsightWarning:
		return "⚠️"
	case finance.InsightSuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}
