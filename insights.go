package finance

import "fmt"

// InsightType classifies an advisory message.
type InsightType string

const (
	InsightInfo    InsightType = "info"
	InsightWarning InsightType = "warning"
	InsightSuccess InsightType = "success"
)

// Insight is one advisory message derived from the current state.
type Insight struct {
	Type    InsightType
	Title   string
	Message string
}

// Insights computes the advisory messages for a state snapshot, anchored to
// the given day. Pure: no mutation, no I/O.
func Insights(state *State, today Date) []Insight {
	var insights []Insight

	// Rent reminder, fires within the three days before the due day.
	if state.Settings.RentDueDate > 0 {
		daysUntil := state.Settings.RentDueDate - today.Day()
		if daysUntil >= 0 && daysUntil <= 3 {
			when := fmt.Sprintf("in %d days", daysUntil)
			if daysUntil == 0 {
				when = "today"
			}
			insights = append(insights, Insight{
				Type:    InsightWarning,
				Title:   "Rent due soon",
				Message: fmt.Sprintf("Your rent is due %s.", when),
			})
		}
	}

	// Emergency fund progress. Silent in the 20-99% band.
	totalInvested := state.TotalInvested()
	if state.Settings.EmergencyFundGoal.IsPositive() {
		progress := totalInvested.Ratio(state.Settings.EmergencyFundGoal) * 100
		switch {
		case progress < 20:
			insights = append(insights, Insight{
				Type:    InsightInfo,
				Title:   "Emergency fund",
				Message: fmt.Sprintf("You have reached %.1f%% of your goal. Keep going!", progress),
			})
		case progress >= 100:
			insights = append(insights, Insight{
				Type:    InsightSuccess,
				Title:   "Goal reached",
				Message: "Congratulations! Your emergency fund is complete.",
			})
		}
	}

	// Concentration warning: one asset class holding more than 70% of the
	// total only matters once there is more than one investment.
	if len(state.Investments) > 1 {
		buckets := make(map[InvestmentType]Money)
		for _, inv := range state.Investments {
			buckets[inv.Type] = buckets[inv.Type].Add(inv.CurrentAmount)
		}
		var topType InvestmentType
		var topAmount Money
		for t, amount := range buckets {
			if amount.GreaterThan(topAmount) || (amount.Equal(topAmount) && t < topType) {
				topType, topAmount = t, amount
			}
		}
		concentration := topAmount.Ratio(totalInvested) * 100
		if concentration > 70 {
			insights = append(insights, Insight{
				Type:    InsightWarning,
				Title:   "High concentration",
				Message: fmt.Sprintf("Your portfolio is heavily concentrated in %s (%.0f%%).", topType.Label(), concentration),
			})
		}
	}

	// Personal savings rate over the current month, excluding support-paid
	// spending. Success above 20%, a nudge between 0% and 5%, silent
	// otherwise, negative rates included.
	if state.Settings.MonthlySalary.IsPositive() {
		month := today.Key()
		var personalExpenses Money
		for _, t := range state.Transactions {
			if t.Type == Expense && !t.PaidBySupport && t.Date.Key() == month {
				personalExpenses = personalExpenses.Add(t.Amount)
			}
		}
		for _, e := range state.FixedExpenses {
			if !e.PaidBySupport {
				personalExpenses = personalExpenses.Add(e.Amount)
			}
		}
		rate := state.Settings.MonthlySalary.Sub(personalExpenses).Ratio(state.Settings.MonthlySalary) * 100
		switch {
		case rate > 20:
			insights = append(insights, Insight{
				Type:    InsightSuccess,
				Title:   "Great savings rate",
				Message: fmt.Sprintf("You are saving %.0f%% of your salary this month (support excluded).", rate),
			})
		case rate > 0 && rate < 5:
			insights = append(insights, Insight{
				Type:    InsightInfo,
				Title:   "Watch your spending",
				Message: fmt.Sprintf("Your personal margin this month is low (%.0f%%).", rate),
			})
		}
	}

	return insights
}

// PortfolioScore is a 0-100 diversification heuristic: a flat base plus
// points per distinct asset class and per asset, clamped. It is a rough
// proxy, not a risk-adjusted metric.
func PortfolioScore(investments []Investment) int {
	if len(investments) == 0 {
		return 0
	}
	score := 50

	types := make(map[InvestmentType]bool)
	for _, inv := range investments {
		types[inv.Type] = true
	}
	score += len(types) * 10

	score += min(len(investments)*2, 20)

	return min(score, 100)
}
