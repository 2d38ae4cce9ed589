package agent

import (
	"context"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/AdryannSanntos/controle-financeiro/renderer"
	"google.golang.org/genai"
)

// Func implements Function from a declaration and a callback.
type Func struct {
	Decl *genai.FunctionDeclaration
	Fn   func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Fn(ctx, id, args)
}

func output(id, name, text string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": text}}
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

var periodSchema = &genai.Schema{
	Type: genai.TypeString,
	Description: `The calendar window to report on. One of: this_month,
last_month, last_3_months, this_year, all_time. Defaults to this_month.`,
}

func parsePeriod(args map[string]any) (finance.FilterPeriod, error) {
	raw, ok := args["period"].(string)
	if !ok || raw == "" {
		return finance.ThisMonth, nil
	}
	return finance.ParseFilterPeriod(raw)
}

// Tools builds the advisor's read-only tool set over a store.
func Tools(store *finance.Store) []Function {
	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports total income, total expenses, balance,
pending expenses, support received and total invested for a calendar window.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"period": periodSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the summary figures.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			period, err := parsePeriod(args)
			if err != nil {
				return failure(id, "Summary", err)
			}
			f := finance.NewFilter()
			f.SetPeriod(period)
			state := store.State()
			s := finance.NewSummary(state, f, finance.Today())
			return output(id, "Summary", renderer.SummaryMarkdown(s))
		},
	}

	timeline := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Timeline",
			Description: `Timeline lists every financial event in a calendar
window, newest first: transactions, investment contributions and withdrawals,
support deposits, and projected upcoming fixed bills.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"period": periodSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of events grouped by month.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			period, err := parsePeriod(args)
			if err != nil {
				return failure(id, "Timeline", err)
			}
			f := finance.NewFilter()
			f.SetPeriod(period)
			state := store.State()
			events := finance.BuildTimeline(state, f, finance.Today())
			return output(id, "Timeline", renderer.TimelineMarkdown(events, state.Settings.Currency))
		},
	}

	insights := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Insights",
			Description: `Insights returns the current advisory messages (rent
coming due, emergency fund level, portfolio concentration, savings rate) and
the diversification score.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown list of advisory messages.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			state := store.State()
			report := renderer.InsightsMarkdown(
				finance.Insights(state, finance.Today()),
				finance.PortfolioScore(state.Investments),
			)
			return output(id, "Insights", report)
		},
	}

	budgets := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Budgets",
			Description: `Budgets reports this month's spending against each
category budget, with the usage percentage and whether the limit is exceeded.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of budget usage per category.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			state := store.State()
			report := renderer.BudgetMarkdown(
				finance.BudgetReport(state, finance.Today()),
				state.Settings.Currency,
			)
			return output(id, "Budgets", report)
		},
	}

	allocation := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Allocation",
			Description: `Allocation breaks the investment portfolio down by
asset class, with each class's share of the total and the diversification
score.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the portfolio allocation.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			state := store.State()
			report := renderer.AllocationMarkdown(
				finance.Allocation(state.Investments),
				finance.PortfolioScore(state.Investments),
				state.Settings.Currency,
			)
			return output(id, "Allocation", report)
		},
	}

	return []Function{summary, timeline, insights, budgets, allocation}
}
