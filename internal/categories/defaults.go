package categories

import "github.com/spendlog-dev/spendlog/internal/model"

// DefaultSet returns the categories every new session starts with.
func DefaultSet() []model.Category {
	return []model.Category{
		{Key: "food", Name: "Food & Dining"},
		{Key: "transport", Name: "Transportation"},
		{Key: "utilities", Name: "Utilities"},
		{Key: "entertainment", Name: "Entertainment"},
		{Key: "healthcare", Name: "Healthcare"},
		{Key: "shopping", Name: "Shopping"},
		{Key: "education", Name: "Education"},
		{Key: "other", Name: "Other"},
	}
}
