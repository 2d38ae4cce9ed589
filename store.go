package finance

import (
	"log"
	"sync"
)

// Store owns the mutable State aggregate and funnels every mutation through a
// narrow operation set with last-writer-wins semantics. Edits and deletes of
// an unknown id are silent no-ops.
//
// Every mutation persists the whole state through the Storage collaborator.
// Persistence is fire-and-forget: a failed save is logged, never surfaced to
// the caller, and the in-memory state stays authoritative for readers.
type Store struct {
	mu      sync.Mutex
	state   *State
	storage Storage
	subs    []func()
}

// NewStore creates a store over the given storage. A previously persisted
// state is loaded; otherwise the factory default state is used.
func NewStore(storage Storage) (*Store, error) {
	state, found, err := storage.Load()
	if err != nil {
		return nil, err
	}
	if !found {
		state = DefaultState()
	}
	return &Store{state: state, storage: storage}, nil
}

// State returns a snapshot of the current state. The snapshot is a deep copy:
// readers never observe later mutations.
func (s *Store) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// mutate runs fn under the lock, then persists and notifies subscribers.
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(s.state)
	snapshot := s.state.Clone()
	subs := s.subs
	s.mu.Unlock()

	if err := s.storage.Save(snapshot); err != nil {
		log.Printf("warning: could not persist state: %v", err)
	}
	for _, fn := range subs {
		fn()
	}
}

// AddTransaction prepends a transaction, newest first like the original app.
func (s *Store) AddTransaction(t Transaction) {
	s.mutate(func(st *State) {
		st.Transactions = append([]Transaction{t}, st.Transactions...)
	})
}

// EditTransaction applies a partial update to the transaction with the given id.
func (s *Store) EditTransaction(id string, p TransactionPatch) {
	s.mutate(func(st *State) {
		for i := range st.Transactions {
			if st.Transactions[i].ID == id {
				st.Transactions[i].apply(p)
				return
			}
		}
	})
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id string) {
	s.mutate(func(st *State) {
		st.Transactions = deleteByID(st.Transactions, id, func(t Transaction) string { return t.ID })
	})
}

// AddFixedExpense appends a recurring obligation.
func (s *Store) AddFixedExpense(e FixedExpense) {
	s.mutate(func(st *State) {
		st.FixedExpenses = append(st.FixedExpenses, e)
	})
}

// EditFixedExpense applies a partial update to the fixed expense with the given id.
func (s *Store) EditFixedExpense(id string, p FixedExpensePatch) {
	s.mutate(func(st *State) {
		for i := range st.FixedExpenses {
			if st.FixedExpenses[i].ID == id {
				st.FixedExpenses[i].apply(p)
				return
			}
		}
	})
}

// DeleteFixedExpense removes the fixed expense with the given id.
func (s *Store) DeleteFixedExpense(id string) {
	s.mutate(func(st *State) {
		st.FixedExpenses = deleteByID(st.FixedExpenses, id, func(e FixedExpense) string { return e.ID })
	})
}

// SetBudget upserts the budget for its category: at most one budget per
// category exists.
func (s *Store) SetBudget(b Budget) {
	s.mutate(func(st *State) {
		for i := range st.Budgets {
			if st.Budgets[i].Category == b.Category {
				st.Budgets[i] = b
				return
			}
		}
		st.Budgets = append(st.Budgets, b)
	})
}

// RemoveBudget removes the budget for the given category.
func (s *Store) RemoveBudget(category string) {
	s.mutate(func(st *State) {
		st.Budgets = deleteByID(st.Budgets, category, func(b Budget) string { return b.Category })
	})
}

// AddSupport appends a support deposit.
func (s *Store) AddSupport(sup FinancialSupport) {
	s.mutate(func(st *State) {
		st.FinancialSupport = append(st.FinancialSupport, sup)
	})
}

// EditSupport applies a partial update to the support record with the given id.
func (s *Store) EditSupport(id string, p SupportPatch) {
	s.mutate(func(st *State) {
		for i := range st.FinancialSupport {
			if st.FinancialSupport[i].ID == id {
				st.FinancialSupport[i].apply(p)
				return
			}
		}
	})
}

// RemoveSupport removes the support record with the given id.
func (s *Store) RemoveSupport(id string) {
	s.mutate(func(st *State) {
		st.FinancialSupport = deleteByID(st.FinancialSupport, id, func(f FinancialSupport) string { return f.ID })
	})
}

// AddInvestment appends an investment.
func (s *Store) AddInvestment(inv Investment) {
	s.mutate(func(st *State) {
		st.Investments = append(st.Investments, inv)
	})
}

// UpdateInvestment applies a partial update to the investment with the given
// id. A balance change here does not append a history entry; only
// AddInvestmentEntry keeps balance and ledger in step.
func (s *Store) UpdateInvestment(id string, p InvestmentPatch) {
	s.mutate(func(st *State) {
		for i := range st.Investments {
			if st.Investments[i].ID == id {
				st.Investments[i].apply(p)
				return
			}
		}
	})
}

// DeleteInvestment removes the investment with the given id.
func (s *Store) DeleteInvestment(id string) {
	s.mutate(func(st *State) {
		st.Investments = deleteByID(st.Investments, id, func(i Investment) string { return i.ID })
	})
}

// AddInvestmentEntry prepends an entry to the investment's ledger and adjusts
// its balance: contributions increase it, withdrawals decrease it.
func (s *Store) AddInvestmentEntry(investmentID string, entry InvestmentEntry) {
	s.mutate(func(st *State) {
		for i := range st.Investments {
			inv := &st.Investments[i]
			if inv.ID != investmentID {
				continue
			}
			if entry.Type == Withdrawal {
				inv.CurrentAmount = inv.CurrentAmount.Sub(entry.Amount)
			} else {
				inv.CurrentAmount = inv.CurrentAmount.Add(entry.Amount)
			}
			inv.History = append([]InvestmentEntry{entry}, inv.History...)
			return
		}
	})
}

// UpdateSettings merges the patch into the settings singleton.
func (s *Store) UpdateSettings(p SettingsPatch) {
	s.mutate(func(st *State) {
		st.Settings.apply(p)
	})
}

// Import replaces the whole state. Parsing and validating the incoming
// document is the caller's concern; by the time Import runs the replacement
// is unconditional.
func (s *Store) Import(state *State) {
	s.mutate(func(st *State) {
		*st = *state.Clone()
	})
}

// Reset restores the factory default state, seeds included. There is no undo.
func (s *Store) Reset() {
	s.mutate(func(st *State) {
		*st = *DefaultState()
	})
}

func deleteByID[T any](list []T, id string, key func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
