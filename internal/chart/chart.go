// Package chart renders aggregated expense data as PNG images. It is pure
// presentation: it consumes aggregator output and holds no expense state.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/spendlog-dev/spendlog/internal/tracker"
)

const (
	defaultWidth  = 800
	defaultHeight = 800

	// Slices below this share of the total are folded into one bucket so
	// the pie stays readable.
	minSlicePercent = 1.0
)

// Renderer draws summary charts.
type Renderer struct {
	Width    int
	Height   int
	Currency string // symbol prefixed to amounts in labels, e.g. "$"
}

// NewRenderer creates a Renderer, applying defaults for zero dimensions.
func NewRenderer(width, height int, currency string) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	if currency == "" {
		currency = "$"
	}
	return &Renderer{Width: width, Height: height, Currency: currency}
}

// CategoryPie renders a per-category pie chart for a summary. Slices under
// 1% of the total are folded into a single "Other (<1%)" slice.
func (r *Renderer) CategoryPie(sum tracker.Summary) ([]byte, error) {
	if sum.IsEmpty() {
		return nil, fmt.Errorf("no expenses to chart")
	}

	var values []chart.Value
	small := 0.0
	for _, ct := range sum.Categories {
		amount, _ := ct.Amount.Float64()
		if ct.Share < minSlicePercent {
			small += amount
			continue
		}
		name := ct.Name
		if name == "" {
			name = ct.Category
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s%.2f (%.1f%%)", name, r.Currency, amount, ct.Share),
			Value: amount,
		})
	}
	if small > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Other (<1%%): %s%.2f", r.Currency, small),
			Value: small,
		})
	}

	pie := chart.PieChart{
		Title:  "Expenses by Category",
		Width:  r.Width,
		Height: r.Height,
		Values: values,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering category pie: %w", err)
	}
	return buf.Bytes(), nil
}

// MonthlyTrend renders a line chart of per-month grand totals. At least two
// months of data are required to draw an axis range.
func (r *Renderer) MonthlyTrend(totals []tracker.MonthTotal) ([]byte, error) {
	if len(totals) < 2 {
		return nil, fmt.Errorf("need at least two months of data, have %d", len(totals))
	}

	xValues := make([]time.Time, len(totals))
	yValues := make([]float64, len(totals))
	for i, mt := range totals {
		xValues[i] = mt.Month.Time()
		yValues[i], _ = mt.Total.Float64()
	}

	graph := chart.Chart{
		Title:  "Monthly Expense Trend",
		Width:  r.Width,
		Height: r.Height / 2,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%s%.0f", r.Currency, v.(float64))
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering monthly trend: %w", err)
	}
	return buf.Bytes(), nil
}
