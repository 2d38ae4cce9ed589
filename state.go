package finance

// AppSettings is the singleton user configuration. There is exactly one
// instance per state; updates merge field by field.
type AppSettings struct {
	Currency          string `json:"currency"`
	HideValues        bool   `json:"hideValues"`
	UserName          string `json:"userName"`
	MonthlySalary     Money  `json:"monthlySalary"`
	RentAmount        Money  `json:"rentAmount"`
	RentDueDate       int    `json:"rentDueDate"` // day of month, 1..31
	NextRentDate      Date   `json:"nextRentDate,omitzero"`
	EmergencyFundGoal Money  `json:"emergencyFundGoal"`
}

// SettingsPatch is a partial update for AppSettings; nil fields are left
// unchanged.
type SettingsPatch struct {
	Currency          *string
	HideValues        *bool
	UserName          *string
	MonthlySalary     *Money
	RentAmount        *Money
	RentDueDate       *int
	NextRentDate      *Date
	EmergencyFundGoal *Money
}

func (s *AppSettings) apply(p SettingsPatch) {
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.HideValues != nil {
		s.HideValues = *p.HideValues
	}
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.MonthlySalary != nil {
		s.MonthlySalary = *p.MonthlySalary
	}
	if p.RentAmount != nil {
		s.RentAmount = *p.RentAmount
	}
	if p.RentDueDate != nil {
		s.RentDueDate = *p.RentDueDate
	}
	if p.NextRentDate != nil {
		s.NextRentDate = *p.NextRentDate
	}
	if p.EmergencyFundGoal != nil {
		s.EmergencyFundGoal = *p.EmergencyFundGoal
	}
}

// State is the aggregate root owning every entity collection. The whole state
// is imported, exported and reset as one unit.
type State struct {
	Transactions     []Transaction      `json:"transactions"`
	FixedExpenses    []FixedExpense     `json:"fixedExpenses"`
	Budgets          []Budget           `json:"budgets"`
	FinancialSupport []FinancialSupport `json:"financialSupport"`
	Investments      []Investment       `json:"investments"`
	Settings         AppSettings        `json:"settings"`
	LastSync         string             `json:"lastSync,omitempty"`
}

// DefaultState returns the factory state: seeded fixed expenses and budgets,
// empty collections otherwise. Reset restores exactly this.
func DefaultState() *State {
	return &State{
		Transactions: []Transaction{},
		FixedExpenses: []FixedExpense{
			{ID: "f1", Name: "Aluguel & Condomínio", Amount: M(2500), DayDue: 5, Category: "aluguel", AutoTrack: true},
			{ID: "f2", Name: "Energia Elétrica", Amount: M(80), DayDue: 10, Category: "aluguel", AutoTrack: true},
			{ID: "f3", Name: "Internet", Amount: M(50), DayDue: 15, Category: "aluguel", AutoTrack: true},
			{ID: "f4", Name: "Gás Encanado", Amount: M(80), DayDue: 10, Category: "aluguel", AutoTrack: true},
			{ID: "f5", Name: "Celular", Amount: M(50), DayDue: 20, Category: "outros", AutoTrack: true},
			{ID: "f6", Name: "Academia", Amount: M(180), DayDue: 1, Category: "saude", AutoTrack: true},
			{ID: "f7", Name: "Spotify", Amount: M(6), DayDue: 15, Category: "lazer", AutoTrack: true},
		},
		Budgets: []Budget{
			{Category: "alimentacao", Limit: M(1200), Period: "monthly"},
			{Category: "transporte", Limit: M(120), Period: "monthly"},
			{Category: "lazer", Limit: M(400), Period: "monthly"},
			{Category: "outros", Limit: M(400), Period: "monthly"},
		},
		FinancialSupport: []FinancialSupport{},
		Investments:      []Investment{},
		Settings: AppSettings{
			Currency:          "BRL",
			UserName:          "Usuário",
			MonthlySalary:     M(0),
			RentAmount:        M(2500),
			RentDueDate:       5,
			NextRentDate:      Today(),
			EmergencyFundGoal: M(5000),
		},
	}
}

// Clone returns a deep copy of the state, so snapshots handed to readers are
// isolated from later mutations.
func (s *State) Clone() *State {
	c := *s
	c.Transactions = append([]Transaction(nil), s.Transactions...)
	c.FixedExpenses = append([]FixedExpense(nil), s.FixedExpenses...)
	c.Budgets = append([]Budget(nil), s.Budgets...)
	c.FinancialSupport = append([]FinancialSupport(nil), s.FinancialSupport...)
	c.Investments = make([]Investment, len(s.Investments))
	for i, inv := range s.Investments {
		inv.History = append([]InvestmentEntry(nil), inv.History...)
		c.Investments[i] = inv
	}
	return &c
}

// TotalInvested sums the live balance of every investment.
func (s *State) TotalInvested() Money {
	var total Money
	for _, inv := range s.Investments {
		total = total.Add(inv.CurrentAmount)
	}
	return total
}
