package model

import (
	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/dates"
)

// Expense is a single recorded expense. Once created it is never mutated;
// it lives for the process session only.
type Expense struct {
	ID          string
	Date        dates.Date
	Amount      decimal.Decimal // always positive
	Category    string          // registry key, e.g. "food"
	Description string
}
