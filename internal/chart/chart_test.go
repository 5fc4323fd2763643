package chart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/tracker"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSummary() tracker.Summary {
	return tracker.Summarize([]model.Expense{
		{Date: dates.New(2024, time.January, 5), Amount: dec("25.50"), Category: "food"},
		{Date: dates.New(2024, time.February, 10), Amount: dec("60.00"), Category: "transport"},
		{Date: dates.New(2024, time.March, 15), Amount: dec("800.00"), Category: "rent"},
	})
}

func TestCategoryPie(t *testing.T) {
	r := NewRenderer(400, 400, "$")

	png, err := r.CategoryPie(sampleSummary())
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:4], "output must be a PNG")
}

func TestCategoryPie_Empty(t *testing.T) {
	r := NewRenderer(0, 0, "")

	_, err := r.CategoryPie(tracker.Summary{})
	assert.Error(t, err)
}

func TestCategoryPie_FoldsTinySlices(t *testing.T) {
	// 0.50 of 1000.50 is under 1% and must still render (folded bucket).
	sum := tracker.Summarize([]model.Expense{
		{Date: dates.New(2024, time.January, 1), Amount: dec("1000.00"), Category: "rent"},
		{Date: dates.New(2024, time.January, 2), Amount: dec("0.50"), Category: "food"},
	})

	r := NewRenderer(400, 400, "$")
	png, err := r.CategoryPie(sum)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestMonthlyTrend(t *testing.T) {
	totals := []tracker.MonthTotal{
		{Month: dates.New(2024, time.January, 1), Total: dec("25.50")},
		{Month: dates.New(2024, time.February, 1), Total: dec("60.00")},
		{Month: dates.New(2024, time.March, 1), Total: dec("800.00")},
	}

	r := NewRenderer(800, 800, "$")
	png, err := r.MonthlyTrend(totals)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestMonthlyTrend_TooFewPoints(t *testing.T) {
	r := NewRenderer(800, 800, "$")

	_, err := r.MonthlyTrend(nil)
	assert.Error(t, err)

	_, err = r.MonthlyTrend([]tracker.MonthTotal{
		{Month: dates.New(2024, time.January, 1), Total: dec("25.50")},
	})
	assert.Error(t, err)
}

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer(0, -1, "")
	assert.Equal(t, defaultWidth, r.Width)
	assert.Equal(t, defaultHeight, r.Height)
	assert.Equal(t, "$", r.Currency)
}
