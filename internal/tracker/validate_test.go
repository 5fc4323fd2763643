package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/model"
)

func TestValidateExpense_OK(t *testing.T) {
	e := exp(2024, time.February, 29, "25.50", "food", "leap day lunch")
	assert.Empty(t, ValidateExpense(e))
}

func TestValidateExpense_Violations(t *testing.T) {
	tests := []struct {
		name      string
		expense   model.Expense
		wantField string
	}{
		{
			name:      "zero amount",
			expense:   exp(2024, time.January, 1, "0", "food", ""),
			wantField: "amount",
		},
		{
			name:      "negative amount",
			expense:   exp(2024, time.January, 1, "-5.00", "food", ""),
			wantField: "amount",
		},
		{
			name:      "too many decimal places",
			expense:   exp(2024, time.January, 1, "1.999", "food", ""),
			wantField: "amount",
		},
		{
			name:      "zero date",
			expense:   model.Expense{Amount: dec("1.00"), Category: "food"},
			wantField: "date",
		},
		{
			name: "impossible date",
			expense: model.Expense{
				Date:     dates.New(2024, time.February, 30),
				Amount:   dec("1.00"),
				Category: "food",
			},
			wantField: "date",
		},
		{
			name:      "empty category",
			expense:   exp(2024, time.January, 1, "1.00", "", ""),
			wantField: "category",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := ValidateExpense(tt.expense)
			require.NotEmpty(t, verrs)
			found := false
			for _, ve := range verrs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			assert.True(t, found, "expected a %q violation, got %v", tt.wantField, verrs)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	ve := ValidationError{Field: "amount", Description: "must be positive, got -1"}
	assert.Equal(t, "amount: must be positive, got -1", ve.Error())
}
