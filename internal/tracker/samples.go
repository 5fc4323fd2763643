package tracker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/dates"
)

// SampleParams returns a small demo data set for trying out the tracker.
func SampleParams() []AddParams {
	d := func(y int, m time.Month, day int) dates.Date { return dates.New(y, m, day) }
	amt := decimal.RequireFromString

	return []AddParams{
		{Date: d(2024, time.January, 5), Amount: amt("25.50"), Category: "food", Description: "Lunch at Subway"},
		{Date: d(2024, time.February, 10), Amount: amt("60.00"), Category: "transport", Description: "Monthly metro card"},
		{Date: d(2024, time.March, 15), Amount: amt("800.00"), Category: "rent", Description: "March rent"},
		{Date: d(2024, time.April, 20), Amount: amt("15.75"), Category: "entertainment", Description: "Movie night"},
		{Date: d(2024, time.May, 3), Amount: amt("30.25"), Category: "food", Description: "Groceries"},
		{Date: d(2024, time.May, 18), Amount: amt("40.00"), Category: "other", Description: "Gift for friend"},
	}
}

// Seed records the sample data set through the normal Add path.
func (s *Service) Seed() error {
	for _, p := range SampleParams() {
		if _, err := s.Add(p); err != nil {
			return err
		}
	}
	return nil
}
