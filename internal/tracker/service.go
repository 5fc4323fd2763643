package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/categories"
	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/id"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// Service provides business logic over the session's expense store.
type Service struct {
	store    *Store
	registry *categories.Registry
}

// NewService creates a Service with an empty store.
func NewService(registry *categories.Registry) *Service {
	return &Service{store: NewStore(), registry: registry}
}

// AddParams holds parameters for recording an expense.
type AddParams struct {
	Date        dates.Date
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Add validates params, registers a free-form category on first use, and
// appends the expense to the store. A record that fails validation never
// reaches the store.
func (s *Service) Add(params AddParams) (model.Expense, error) {
	e := model.Expense{
		Date:        params.Date,
		Amount:      params.Amount,
		Category:    categories.Normalize(params.Category),
		Description: strings.TrimSpace(params.Description),
	}

	if verrs := ValidateExpense(e); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Expense{}, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if _, err := s.registry.Register(e.Category, ""); err != nil {
		return model.Expense{}, fmt.Errorf("registering category: %w", err)
	}

	e.ID = id.New()
	for s.store.HasID(e.ID) {
		e.ID = id.New()
	}

	s.store.Add(e)
	return e, nil
}

// All returns the full record sequence, newest first.
func (s *Service) All() []model.Expense {
	return NewestFirst(s.store.All())
}

// Len returns the number of recorded expenses.
func (s *Service) Len() int {
	return s.store.Len()
}

// FilterByDate returns the newest-first view of expenses inside the range.
func (s *Service) FilterByDate(r Range) ([]model.Expense, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return NewestFirst(Filter(s.store.All(), r, CategoryAny)), nil
}

// FilterByCategory returns the newest-first view of one category.
func (s *Service) FilterByCategory(category string) []model.Expense {
	return NewestFirst(ByCategory(s.store.All(), category))
}

// Search returns the newest-first view of expenses whose description
// contains the query.
func (s *Service) Search(query string) []model.Expense {
	return NewestFirst(Search(s.store.All(), query))
}

// Summary aggregates the full record sequence.
func (s *Service) Summary() Summary {
	return s.SummaryOf(s.store.All())
}

// SummaryOf aggregates an arbitrary view and resolves category display
// names from the registry.
func (s *Service) SummaryOf(view []model.Expense) Summary {
	sum := Summarize(view)
	for i := range sum.Categories {
		sum.Categories[i].Name = s.registry.Name(sum.Categories[i].Category)
	}
	return sum
}

// Monthly aggregates a single calendar month.
func (s *Service) Monthly(year int, month time.Month) MonthlySummary {
	ms := SummarizeMonth(s.store.All(), year, month)
	for i := range ms.Summary.Categories {
		ms.Summary.Categories[i].Name = s.registry.Name(ms.Summary.Categories[i].Category)
	}
	return ms
}

// Trend returns per-month grand totals in chronological order.
func (s *Service) Trend() []MonthTotal {
	return MonthlyTotals(s.store.All())
}

// Categories exposes the session's category registry.
func (s *Service) Categories() *categories.Registry {
	return s.registry
}
