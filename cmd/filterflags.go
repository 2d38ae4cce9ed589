package cmd

import (
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
)

// filterFlags is the filter vocabulary shared by the list and report
// commands. All criteria combine with AND.
type filterFlags struct {
	period string
	from   string
	to     string
	typ    string
	search string
	min    float64
	max    float64
}

func (ff *filterFlags) register(f *flag.FlagSet, defaultPeriod string) {
	f.StringVar(&ff.period, "period", defaultPeriod, "Calendar window: this_month, last_month, last_3_months, this_year, all_time.")
	f.StringVar(&ff.from, "from", "", "Start of a custom date range (YYYY-MM-DD). Overrides -period.")
	f.StringVar(&ff.to, "to", "", "End of a custom date range (YYYY-MM-DD).")
	f.StringVar(&ff.typ, "type", "all", "Record type: all, income, expense, investment.")
	f.StringVar(&ff.search, "search", "", "Case-insensitive substring over description and category.")
	f.Float64Var(&ff.min, "min", 0, "Minimum absolute amount, inclusive.")
	f.Float64Var(&ff.max, "max", 0, "Maximum absolute amount, inclusive. 0 means unbounded.")
}

// build resolves the flags into a filter.
func (ff *filterFlags) build() (finance.Filter, error) {
	filter := finance.NewFilter()

	if ff.period != "" {
		period, err := finance.ParseFilterPeriod(ff.period)
		if err != nil {
			return filter, err
		}
		filter.SetPeriod(period)
	}

	if ff.from != "" || ff.to != "" {
		if ff.from == "" || ff.to == "" {
			return filter, fmt.Errorf("-from and -to must be given together")
		}
		from, err := finance.ParseDate(ff.from)
		if err != nil {
			return filter, fmt.Errorf("invalid -from date: %w", err)
		}
		to, err := finance.ParseDate(ff.to)
		if err != nil {
			return filter, fmt.Errorf("invalid -to date: %w", err)
		}
		filter.SetRange(finance.NewRange(from, to))
	}

	typ, err := finance.ParseTypeFilter(ff.typ)
	if err != nil {
		return filter, err
	}
	filter.Type = typ

	filter.Search = ff.search

	var min, max *finance.Money
	if ff.min > 0 {
		m := finance.M(ff.min)
		min = &m
	}
	if ff.max > 0 {
		m := finance.M(ff.max)
		max = &m
	}
	filter.SetAmountRange(min, max)

	return filter, nil
}
