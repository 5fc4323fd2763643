package tracker

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// CategoryTotal is the accumulated amount for one category of a view.
type CategoryTotal struct {
	Category string // registry key
	Name     string // display name, filled by the service
	Amount   decimal.Decimal
	Count    int
	Share    float64 // percentage of the view's grand total
}

// Summary holds the grand total and per-category totals of a view. It is a
// pure function of the view and is recomputed whenever the view changes.
type Summary struct {
	Total      decimal.Decimal
	Count      int
	Categories []CategoryTotal
}

// IsEmpty reports whether the summary covers no expenses.
func (s Summary) IsEmpty() bool {
	return s.Count == 0
}

// Summarize accumulates per-category totals and the grand total. Amounts are
// added in input order with exact decimal arithmetic, so the result does not
// depend on ordering. Empty input yields a zero summary.
func Summarize(expenses []model.Expense) Summary {
	sum := Summary{Total: decimal.Zero}
	totals := make(map[string]*CategoryTotal)
	var order []string

	for _, e := range expenses {
		sum.Total = sum.Total.Add(e.Amount)
		sum.Count++

		ct, ok := totals[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			totals[e.Category] = ct
			order = append(order, e.Category)
		}
		ct.Amount = ct.Amount.Add(e.Amount)
		ct.Count++
	}

	for _, key := range order {
		ct := totals[key]
		if sum.Total.IsPositive() {
			share, _ := ct.Amount.Div(sum.Total).Mul(decimal.NewFromInt(100)).Float64()
			ct.Share = share
		}
		sum.Categories = append(sum.Categories, *ct)
	}

	// Largest categories first; ties break on key for a stable display.
	sort.SliceStable(sum.Categories, func(i, j int) bool {
		cmp := sum.Categories[i].Amount.Cmp(sum.Categories[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return sum.Categories[i].Category < sum.Categories[j].Category
	})

	return sum
}

// MonthlySummary is the aggregate for a single calendar month.
type MonthlySummary struct {
	Year    int
	Month   time.Month
	Summary Summary
	Average decimal.Decimal // mean amount per record, zero when empty
	Largest model.Expense   // highest single expense, zero value when empty
}

// SummarizeMonth filters expenses to the given month and summarizes them.
// A month with no records yields zero totals without error.
func SummarizeMonth(expenses []model.Expense, year int, month time.Month) MonthlySummary {
	first := dates.New(year, month, 1)
	last := dates.FromTime(first.Time().AddDate(0, 1, -1))

	inMonth := Filter(expenses, Range{From: first, To: last}, CategoryAny)

	ms := MonthlySummary{
		Year:    year,
		Month:   month,
		Summary: Summarize(inMonth),
		Average: decimal.Zero,
	}

	if len(inMonth) == 0 {
		return ms
	}

	ms.Average = ms.Summary.Total.Div(decimal.NewFromInt(int64(len(inMonth)))).Round(2)
	ms.Largest = inMonth[0]
	for _, e := range inMonth[1:] {
		if e.Amount.GreaterThan(ms.Largest.Amount) {
			ms.Largest = e
		}
	}
	return ms
}

// MonthlyTotals groups expenses by calendar month and returns each month's
// grand total in chronological order. Used by the trend chart.
func MonthlyTotals(expenses []model.Expense) []MonthTotal {
	totals := make(map[string]*MonthTotal)
	var keys []string

	for _, e := range expenses {
		key := e.Date.MonthKey()
		mt, ok := totals[key]
		if !ok {
			mt = &MonthTotal{Month: dates.New(e.Date.Year, e.Date.Month, 1)}
			totals[key] = mt
			keys = append(keys, key)
		}
		mt.Total = mt.Total.Add(e.Amount)
	}

	sort.Strings(keys)
	out := make([]MonthTotal, 0, len(keys))
	for _, key := range keys {
		out = append(out, *totals[key])
	}
	return out
}

// MonthTotal is one month's grand total.
type MonthTotal struct {
	Month dates.Date // first day of the month
	Total decimal.Decimal
}
