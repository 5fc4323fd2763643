package tracker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// ValidationError describes a single invariant violation on an expense.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidateExpense enforces the record invariants: positive amount with at
// most 2 decimal places, a real calendar date, and a non-empty category.
func ValidateExpense(e model.Expense) []ValidationError {
	var errs []ValidationError

	if !e.Amount.IsPositive() {
		errs = append(errs, ValidationError{
			Field:       "amount",
			Description: fmt.Sprintf("must be positive, got %s", e.Amount),
		})
	}

	hundred := decimal.NewFromInt(100)
	if !e.Amount.Mul(hundred).Equal(e.Amount.Mul(hundred).Floor()) {
		errs = append(errs, ValidationError{
			Field:       "amount",
			Description: fmt.Sprintf("%s has more than 2 decimal places", e.Amount),
		})
	}

	if e.Date.IsZero() {
		errs = append(errs, ValidationError{
			Field:       "date",
			Description: "must be set",
		})
	} else {
		// Rebuild through time.Date: a component that normalized away
		// means the date never existed on the calendar.
		t := time.Date(e.Date.Year, e.Date.Month, e.Date.Day, 0, 0, 0, 0, time.UTC)
		if t.Year() != e.Date.Year || t.Month() != e.Date.Month || t.Day() != e.Date.Day {
			errs = append(errs, ValidationError{
				Field:       "date",
				Description: fmt.Sprintf("%s is not a calendar date", e.Date),
			})
		}
	}

	if e.Category == "" {
		errs = append(errs, ValidationError{
			Field:       "category",
			Description: "must not be empty",
		})
	}

	return errs
}
