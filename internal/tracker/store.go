package tracker

import "github.com/spendlog-dev/spendlog/internal/model"

// Store is the append-only, session-scoped expense sequence. It performs no
// validation; callers validate before appending.
type Store struct {
	expenses []model.Expense
	ids      map[string]bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{ids: make(map[string]bool)}
}

// Add appends an expense. It always succeeds.
func (s *Store) Add(e model.Expense) {
	s.expenses = append(s.expenses, e)
	s.ids[e.ID] = true
}

// All returns a copy of the full sequence in insertion order.
func (s *Store) All() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

// HasID reports whether an expense ID is already in use.
func (s *Store) HasID(id string) bool {
	return s.ids[id]
}
