package finance

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// This file handles the backup format: one human-readable JSON document
// holding the whole state. The format round-trips: Import(Export(state))
// restores every collection, investments included.

// Export writes the full state to w as indented JSON.
func Export(w io.Writer, state *State) error {
	out := state.Clone()
	out.LastSync = time.Now().UTC().Format(time.RFC3339)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	return nil
}

// persistEnvelope is the wrapper the original web app's storage middleware
// wrote around the state. Import accepts it so old backups restore cleanly.
type persistEnvelope struct {
	State   *State `json:"state"`
	Version int    `json:"version"`
}

// Import parses a backup document and returns the state it holds. It accepts
// both a bare state document and the browser-persisted envelope
// {"state": {...}, "version": n}. On a malformed document it returns an
// error and the caller's state is untouched; nothing is partially applied.
func Import(r io.Reader) (*State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("cannot parse backup: %w", err)
	}

	// A bare state has at least a settings currency; the envelope shape
	// leaves it empty because everything sits one level deeper.
	if state.Settings.Currency == "" {
		var env persistEnvelope
		if err := json.Unmarshal(data, &env); err == nil && env.State != nil && env.State.Settings.Currency != "" {
			state = *env.State
		}
	}

	normalize(&state)
	return &state, nil
}

// normalize replaces nil collections with empty ones so downstream code
// never distinguishes "absent" from "empty".
func normalize(s *State) {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.FixedExpenses == nil {
		s.FixedExpenses = []FixedExpense{}
	}
	if s.Budgets == nil {
		s.Budgets = []Budget{}
	}
	if s.FinancialSupport == nil {
		s.FinancialSupport = []FinancialSupport{}
	}
	if s.Investments == nil {
		s.Investments = []Investment{}
	}
	for i := range s.Investments {
		if s.Investments[i].History == nil {
			s.Investments[i].History = []InvestmentEntry{}
		}
	}
}
