package cmd

import (
	"context"
	"flag"
	"fmt"

	finance "github.com/AdryannSanntos/controle-financeiro"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	show       bool
	currency   string
	name       string
	salary     float64
	rent       float64
	rentDay    int
	fundGoal   float64
	hideValues bool
	hideSet    bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the application settings" }
func (*settingsCmd) Usage() string {
	return `cofi settings [-currency <ISO>] [-name <user>] [-salary <value>] [-rent <value>] [-rent-day <1..31>] [-fund-goal <value>] [-hide=<bool>]
cofi settings -show

  Only the flags given are changed; everything else keeps its value.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.show, "show", false, "Print the current settings.")
	f.StringVar(&c.currency, "currency", "", "ISO currency code, e.g. BRL.")
	f.StringVar(&c.name, "name", "", "User display name.")
	f.Float64Var(&c.salary, "salary", 0, "Monthly salary.")
	f.Float64Var(&c.rent, "rent", 0, "Monthly rent amount.")
	f.IntVar(&c.rentDay, "rent-day", 0, "Day of the month the rent is due.")
	f.Float64Var(&c.fundGoal, "fund-goal", 0, "Emergency fund goal.")
	f.Func("hide", "Hide amounts in dashboards: true or false.", func(v string) error {
		c.hideSet = true
		switch v {
		case "true":
			c.hideValues = true
		case "false":
			c.hideValues = false
		default:
			return fmt.Errorf("expected true or false, got %q", v)
		}
		return nil
	})
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail(err)
	}

	if c.show {
		s := store.State().Settings
		fmt.Printf("currency:            %s\n", s.Currency)
		fmt.Printf("user name:           %s\n", s.UserName)
		fmt.Printf("monthly salary:      %s\n", s.MonthlySalary.Display(s.Currency))
		fmt.Printf("rent amount:         %s\n", s.RentAmount.Display(s.Currency))
		fmt.Printf("rent due day:        %d\n", s.RentDueDate)
		fmt.Printf("emergency fund goal: %s\n", s.EmergencyFundGoal.Display(s.Currency))
		fmt.Printf("hide values:         %v\n", s.HideValues)
		return subcommands.ExitSuccess
	}

	var patch finance.SettingsPatch
	if c.currency != "" {
		patch.Currency = &c.currency
	}
	if c.name != "" {
		patch.UserName = &c.name
	}
	if c.salary > 0 {
		m := finance.M(c.salary)
		patch.MonthlySalary = &m
	}
	if c.rent > 0 {
		m := finance.M(c.rent)
		patch.RentAmount = &m
	}
	if c.rentDay > 0 {
		if c.rentDay > 31 {
			return usageError("-rent-day must be between 1 and 31")
		}
		patch.RentDueDate = &c.rentDay
	}
	if c.fundGoal > 0 {
		m := finance.M(c.fundGoal)
		patch.EmergencyFundGoal = &m
	}
	if c.hideSet {
		patch.HideValues = &c.hideValues
	}

	store.UpdateSettings(patch)
	fmt.Println("Settings updated")
	return subcommands.ExitSuccess
}
