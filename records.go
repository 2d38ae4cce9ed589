package finance

import (
	"fmt"
	"strings"
)

// TransactionType is a typed string for the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// TransactionStatus tells whether a transaction has settled.
type TransactionStatus string

const (
	Paid    TransactionStatus = "paid"
	Pending TransactionStatus = "pending"
)

// ParseTransactionStatus parses a string into a TransactionStatus.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid", "":
		return Paid, nil
	case "pending":
		return Pending, nil
	default:
		return "", fmt.Errorf("unknown transaction status %q", s)
	}
}

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	Pix        PaymentMethod = "pix"
	CreditCard PaymentMethod = "credit_card"
	DebitCard  PaymentMethod = "debit_card"
	Cash       PaymentMethod = "cash"
	Transfer   PaymentMethod = "transfer"
	Boleto     PaymentMethod = "boleto"
)

// Transaction is a single ledger entry, income or expense. The amount is
// always stored positive; the sign is contextual and applied by derived views.
type Transaction struct {
	ID            string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Amount        Money             `json:"amount"`
	Date          Date              `json:"date"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty"`
	PaidBySupport bool              `json:"paidBySupport,omitempty"`
}

// Signed returns the amount with the contextual sign applied: negative for
// expenses, positive for income.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionPatch is a partial update for a Transaction; nil fields are left
// unchanged.
type TransactionPatch struct {
	Type          *TransactionType
	Amount        *Money
	Date          *Date
	Category      *string
	Description   *string
	Status        *TransactionStatus
	PaymentMethod *PaymentMethod
	PaidBySupport *bool
}

func (t *Transaction) apply(p TransactionPatch) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = *p.PaymentMethod
	}
	if p.PaidBySupport != nil {
		t.PaidBySupport = *p.PaidBySupport
	}
}

// FixedExpense is a recurring monthly obligation. It is not itself a ledger
// entry: it only reaches the timeline through projection, or when manually
// logged as a transaction.
type FixedExpense struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Amount        Money  `json:"amount"`
	DayDue        int    `json:"dayDue"` // 1..31, clamped when projected onto shorter months
	Category      string `json:"category"`
	AutoTrack     bool   `json:"autoTrack"`
	LastPaidDate  Date   `json:"lastPaidDate,omitzero"`
	PaidBySupport bool   `json:"paidBySupport,omitempty"`
}

// DueIn returns the expense's due date within the month of the given date,
// clamping DayDue to the month's last valid day.
func (e FixedExpense) DueIn(month Date) Date { return month.MonthDay(e.DayDue) }

// FixedExpensePatch is a partial update for a FixedExpense.
type FixedExpensePatch struct {
	Name          *string
	Amount        *Money
	DayDue        *int
	Category      *string
	AutoTrack     *bool
	PaidBySupport *bool
}

func (e *FixedExpense) apply(p FixedExpensePatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.DayDue != nil {
		e.DayDue = *p.DayDue
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.AutoTrack != nil {
		e.AutoTrack = *p.AutoTrack
	}
	if p.PaidBySupport != nil {
		e.PaidBySupport = *p.PaidBySupport
	}
}

// Budget is a monthly spending limit for one category. The category is the
// key: at most one budget exists per category.
type Budget struct {
	Category string `json:"category"`
	Limit    Money  `json:"limit"`
	Period   string `json:"period"` // always "monthly"
}

// FinancialSupport is one inbound support deposit tied to a calendar month,
// not a specific day.
type FinancialSupport struct {
	ID     string   `json:"id"`
	Amount Money    `json:"amount"`
	Month  MonthKey `json:"month"`
	Notes  string   `json:"notes,omitempty"`
}

// SupportPatch is a partial update for a FinancialSupport.
type SupportPatch struct {
	Amount *Money
	Month  *MonthKey
	Notes  *string
}

func (s *FinancialSupport) apply(p SupportPatch) {
	if p.Amount != nil {
		s.Amount = *p.Amount
	}
	if p.Month != nil {
		s.Month = *p.Month
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}

// InvestmentType is the asset class of an investment.
type InvestmentType string

const (
	FixedIncome InvestmentType = "fixed_income"
	Stocks      InvestmentType = "stocks"
	FIIs        InvestmentType = "fiis"
	Crypto      InvestmentType = "crypto"
	Treasury    InvestmentType = "treasury"
	OtherAsset  InvestmentType = "other"
)

// ParseInvestmentType parses a string into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed_income":
		return FixedIncome, nil
	case "stocks":
		return Stocks, nil
	case "fiis":
		return FIIs, nil
	case "crypto":
		return Crypto, nil
	case "treasury":
		return Treasury, nil
	case "other":
		return OtherAsset, nil
	default:
		return "", fmt.Errorf("unknown investment type %q", s)
	}
}

// Label returns a human-readable name for the asset class.
func (t InvestmentType) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// EntryType is the direction of an investment ledger entry.
type EntryType string

const (
	Contribution EntryType = "contribution"
	Withdrawal   EntryType = "withdrawal"
)

// ParseEntryType parses a string into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contribution":
		return Contribution, nil
	case "withdrawal":
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("unknown entry type %q", s)
	}
}

// InvestmentEntry is one contribution to or withdrawal from an investment.
// Entries are immutable once created.
type InvestmentEntry struct {
	ID     string    `json:"id"`
	Date   Date      `json:"date"`
	Amount Money     `json:"amount"`
	Type   EntryType `json:"type"`
}

// Investment is one asset with its live balance and its contribution ledger.
//
// CurrentAmount is the authoritative balance. History is an append-oriented
// ledger used to reconstruct growth; it is adjusted together with the balance
// only by [Store.AddInvestmentEntry]. A direct balance edit through
// [Store.UpdateInvestment] does not append a history entry, so the two can
// diverge when the balance is edited by hand.
type Investment struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Type          InvestmentType    `json:"type"`
	CurrentAmount Money             `json:"currentAmount"`
	History       []InvestmentEntry `json:"history"`
	Color         string            `json:"color,omitempty"`
}

// InvestmentPatch is a partial update for an Investment. It deliberately has
// no History field: the history only grows through the entry operation.
type InvestmentPatch struct {
	Name          *string
	Type          *InvestmentType
	CurrentAmount *Money
	Color         *string
}

func (i *Investment) apply(p InvestmentPatch) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.CurrentAmount != nil {
		i.CurrentAmount = *p.CurrentAmount
	}
	if p.Color != nil {
		i.Color = *p.Color
	}
}
