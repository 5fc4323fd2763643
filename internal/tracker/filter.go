package tracker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// CategoryAny disables category matching in Filter.
const CategoryAny = ""

// Range is an inclusive [From, To] date range.
type Range struct {
	From dates.Date
	To   dates.Date
}

// Validate rejects ranges whose start falls after their end.
func (r Range) Validate() error {
	if r.From.After(r.To) {
		return fmt.Errorf("start date %s is after end date %s", r.From, r.To)
	}
	return nil
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d dates.Date) bool {
	o := d.Ordinal()
	return o >= r.From.Ordinal() && o <= r.To.Ordinal()
}

// Filter returns the subsequence of expenses whose date falls in r and whose
// category matches case-insensitively when category != CategoryAny. The
// original relative order is preserved; an empty result is a valid outcome.
func Filter(expenses []model.Expense, r Range, category string) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if !r.Contains(e.Date) {
			continue
		}
		if category != CategoryAny && !strings.EqualFold(e.Category, category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ByCategory returns expenses whose category matches, case-insensitively,
// preserving order.
func ByCategory(expenses []model.Expense, category string) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

// Search returns expenses whose description contains the query,
// case-insensitively, preserving order.
func Search(expenses []model.Expense, query string) []model.Expense {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

// NewestFirst returns a copy sorted reverse-chronologically. Records on the
// same day keep their insertion order.
func NewestFirst(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Ordinal() > out[j].Date.Ordinal()
	})
	return out
}
