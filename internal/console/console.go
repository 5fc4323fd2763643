// Package console implements the interactive menu over an expense tracker
// session. All state lives on the Console value; input and output streams
// are injected so the loop is testable.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/chart"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/dates"
	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/tracker"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceViewAll
	choiceFilterDate
	choiceFilterCategory
	choiceSearch
	choiceSummary
	choiceMonthly
	choiceChart
	choiceExit
)

// Console runs the menu loop for one session.
type Console struct {
	svc      *tracker.Service
	cfg      *config.Config
	renderer *chart.Renderer
	in       *bufio.Scanner
	out      io.Writer
}

// New creates a Console reading from in and writing to out.
func New(svc *tracker.Service, cfg *config.Config, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:      svc,
		cfg:      cfg,
		renderer: chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height, cfg.Currency),
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops on the menu until the user exits or input ends. Input errors are
// recovered locally by re-prompting; Run itself only fails on write errors
// from chart export.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Welcome to the Expense Tracker!")

	for {
		c.printMenu()
		choice, ok := c.promptChoice()
		if !ok {
			return nil // input closed
		}

		switch choice {
		case choiceAdd:
			c.handleAdd()
		case choiceViewAll:
			c.handleViewAll()
		case choiceFilterDate:
			c.handleFilterDate()
		case choiceFilterCategory:
			c.handleFilterCategory()
		case choiceSearch:
			c.handleSearch()
		case choiceSummary:
			c.handleSummary()
		case choiceMonthly:
			c.handleMonthly()
		case choiceChart:
			c.handleChart()
		case choiceExit:
			fmt.Fprintln(c.out, "Exiting Expense Tracker. Goodbye!")
			return nil
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Expense Tracker Menu ---")
	fmt.Fprintln(c.out, "1. Add Expense")
	fmt.Fprintln(c.out, "2. View All Expenses")
	fmt.Fprintln(c.out, "3. Filter Expenses by Date Range")
	fmt.Fprintln(c.out, "4. Filter Expenses by Category")
	fmt.Fprintln(c.out, "5. Search by Description")
	fmt.Fprintln(c.out, "6. Summary by Category")
	fmt.Fprintln(c.out, "7. Monthly Summary")
	fmt.Fprintln(c.out, "8. Export Summary Chart (PNG)")
	fmt.Fprintln(c.out, "9. Exit")
}

func (c *Console) handleAdd() {
	fmt.Fprintln(c.out, "\n--- Add New Expense ---")

	date, ok := c.promptDate("Enter Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	amount, ok := c.promptAmount()
	if !ok {
		return
	}

	keys := strings.Join(c.svc.Categories().Keys(), ", ")
	category, ok := c.promptNonEmpty(fmt.Sprintf("Enter Category (%s, or a new one): ", keys))
	if !ok {
		return
	}
	description, ok := c.promptLine("Enter Description: ")
	if !ok {
		return
	}

	e, err := c.svc.Add(tracker.AddParams{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
	})
	if err != nil {
		fmt.Fprintf(c.out, "Could not add expense: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Expense added successfully! (ID: %s)\n", e.ID)
}

func (c *Console) handleViewAll() {
	fmt.Fprintln(c.out, "\n--- All Expenses ---")
	c.printTable(c.svc.All())
}

func (c *Console) handleFilterDate() {
	fmt.Fprintln(c.out, "\n--- Filter Expenses by Date Range ---")

	for {
		from, ok := c.promptDate("Enter Start Date (YYYY-MM-DD): ")
		if !ok {
			return
		}
		to, ok := c.promptDate("Enter End Date (YYYY-MM-DD): ")
		if !ok {
			return
		}

		view, err := c.svc.FilterByDate(tracker.Range{From: from, To: to})
		if err != nil {
			fmt.Fprintf(c.out, "%v. Please try again.\n", err)
			continue
		}

		fmt.Fprintf(c.out, "\nExpenses from %s to %s:\n", from, to)
		if len(view) == 0 {
			fmt.Fprintln(c.out, "No expenses found in this date range.")
			return
		}
		c.printTable(view)
		c.printSummary(c.svc.SummaryOf(view))
		return
	}
}

func (c *Console) handleFilterCategory() {
	fmt.Fprintln(c.out, "\n--- Filter Expenses by Category ---")

	category, ok := c.promptNonEmpty("Enter Category to filter by: ")
	if !ok {
		return
	}

	view := c.svc.FilterByCategory(category)
	fmt.Fprintf(c.out, "\nExpenses in category '%s':\n", category)
	if len(view) == 0 {
		fmt.Fprintf(c.out, "No expenses found for category '%s'.\n", category)
		return
	}
	c.printTable(view)
}

func (c *Console) handleSearch() {
	fmt.Fprintln(c.out, "\n--- Search by Description ---")

	query, ok := c.promptNonEmpty("Enter search text: ")
	if !ok {
		return
	}

	view := c.svc.Search(query)
	if len(view) == 0 {
		fmt.Fprintf(c.out, "No expenses matching '%s'.\n", query)
		return
	}
	c.printTable(view)
}

func (c *Console) handleSummary() {
	fmt.Fprintln(c.out, "\n--- Expense Summary ---")

	sum := c.svc.Summary()
	if sum.IsEmpty() {
		fmt.Fprintln(c.out, "No expenses recorded yet to summarize.")
		return
	}
	c.printSummary(sum)
}

func (c *Console) handleMonthly() {
	fmt.Fprintln(c.out, "\n--- Monthly Summary ---")

	year, ok := c.promptInt("Enter Year (e.g. 2024): ", 1900, 9999)
	if !ok {
		return
	}
	month, ok := c.promptInt("Enter Month (1-12): ", 1, 12)
	if !ok {
		return
	}

	ms := c.svc.Monthly(year, time.Month(month))
	fmt.Fprintf(c.out, "\nSummary for %04d-%02d:\n", year, month)
	if ms.Summary.IsEmpty() {
		fmt.Fprintln(c.out, "No expenses recorded in this month.")
		return
	}
	c.printSummary(ms.Summary)
	fmt.Fprintf(c.out, "Average per expense: %s\n", c.money(ms.Average))
	fmt.Fprintf(c.out, "Largest expense: %s (%s)\n", c.money(ms.Largest.Amount), ms.Largest.Description)
}

func (c *Console) handleChart() {
	fmt.Fprintln(c.out, "\n--- Export Summary Chart ---")

	sum := c.svc.Summary()
	if sum.IsEmpty() {
		fmt.Fprintln(c.out, "No expenses recorded yet to chart.")
		return
	}

	path, ok := c.promptLine("Output file [summary.png]: ")
	if !ok {
		return
	}
	if path == "" {
		path = "summary.png"
	}

	png, err := c.renderer.CategoryPie(sum)
	if err != nil {
		fmt.Fprintf(c.out, "Could not render chart: %v\n", err)
		return
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		fmt.Fprintf(c.out, "Could not write %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(c.out, "Wrote %s\n", path)

	// A trend chart needs at least two months of data; skip it quietly
	// otherwise.
	totals := c.svc.Trend()
	if len(totals) < 2 {
		return
	}
	trendPath := strings.TrimSuffix(path, ".png") + "-trend.png"
	png, err = c.renderer.MonthlyTrend(totals)
	if err != nil {
		fmt.Fprintf(c.out, "Could not render trend chart: %v\n", err)
		return
	}
	if err := os.WriteFile(trendPath, png, 0o644); err != nil {
		fmt.Fprintf(c.out, "Could not write %s: %v\n", trendPath, err)
		return
	}
	fmt.Fprintf(c.out, "Wrote %s\n", trendPath)
}

// printTable writes the fixed-width expense table, newest first.
func (c *Console) printTable(view []model.Expense) {
	if len(view) == 0 {
		fmt.Fprintln(c.out, "No expenses recorded yet.")
		return
	}

	line := strings.Repeat("=", 100)
	fmt.Fprintln(c.out, line)
	fmt.Fprintf(c.out, "%-10s %-12s %-12s %-18s %s\n", "ID", "Date", "Amount", "Category", "Description")
	fmt.Fprintln(c.out, line)
	for _, e := range view {
		desc := e.Description
		if len(desc) > 40 {
			desc = desc[:37] + "..."
		}
		fmt.Fprintf(c.out, "%-10s %-12s %-12s %-18s %s\n",
			e.ID, e.Date, c.money(e.Amount), c.svc.Categories().Name(e.Category), desc)
	}
	fmt.Fprintln(c.out, line)

	sum := tracker.Summarize(view)
	fmt.Fprintf(c.out, "Total: %s (%d expenses)\n", c.money(sum.Total), sum.Count)
}

func (c *Console) printSummary(sum tracker.Summary) {
	fmt.Fprintln(c.out, "Total Expenses by Category:")
	for _, ct := range sum.Categories {
		name := ct.Name
		if name == "" {
			name = ct.Category
		}
		fmt.Fprintf(c.out, "  %-18s %12s  (%.1f%%)\n", name, c.money(ct.Amount), ct.Share)
	}
	fmt.Fprintf(c.out, "Overall Total: %s\n", c.money(sum.Total))
}

func (c *Console) money(d decimal.Decimal) string {
	return c.cfg.Currency + d.StringFixed(2)
}

// promptChoice re-prompts until a valid menu number is read. The second
// return is false when input ends.
func (c *Console) promptChoice() (int, bool) {
	fmt.Fprint(c.out, "Enter your choice: ")
	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= choiceAdd && choice <= choiceExit {
			return choice, true
		}
		fmt.Fprint(c.out, "Invalid choice. Please enter a number between 1 and 9: ")
	}
}

func (c *Console) promptDate(prompt string) (dates.Date, bool) {
	fmt.Fprint(c.out, prompt)
	for {
		line, ok := c.readLine()
		if !ok {
			return dates.Date{}, false
		}
		d, err := dates.Parse(strings.TrimSpace(line))
		if err == nil {
			return d, true
		}
		fmt.Fprintf(c.out, "%v. Try again: ", err)
	}
}

func (c *Console) promptAmount() (decimal.Decimal, bool) {
	fmt.Fprint(c.out, "Enter Amount: ")
	for {
		line, ok := c.readLine()
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil && amount.IsPositive() {
			return amount, true
		}
		fmt.Fprint(c.out, "Invalid amount. Please enter a positive number: ")
	}
}

func (c *Console) promptInt(prompt string, min, max int) (int, bool) {
	fmt.Fprint(c.out, prompt)
	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= min && n <= max {
			return n, true
		}
		fmt.Fprintf(c.out, "Please enter a number between %d and %d: ", min, max)
	}
}

func (c *Console) promptNonEmpty(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	for {
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
		fmt.Fprint(c.out, "Please enter a value: ")
	}
}

func (c *Console) promptLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	line, ok := c.readLine()
	return strings.TrimSpace(line), ok
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
