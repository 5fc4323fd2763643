package tracker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/categories"
	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) dates.Date {
	return dates.New(y, m, d)
}

func exp(y int, m time.Month, d int, amount, category, desc string) model.Expense {
	return model.Expense{
		Date:        date(y, m, d),
		Amount:      dec(amount),
		Category:    category,
		Description: desc,
	}
}

func newTestService() *Service {
	return NewService(categories.NewRegistry(categories.DefaultSet()))
}
