// Package analytics derives dashboard statistics, chart series, category
// breakdowns and budget figures from the transaction ledger. Everything in
// here is a stateless, read-only transformation over a snapshot of stored
// records; nothing is cached and nothing is mutated.
package analytics

import (
	"github.com/google/uuid"
)

// DashboardStats is the point-in-time summary shown on the dashboard.
type DashboardStats struct {
	TotalBalance    int64
	MonthlyIncome   int64
	MonthlyExpenses int64
	SavingsRate     float64
}

// ChartDataPoint is one calendar month in a time series. Balance is the
// running net (income - expenses) accumulated from the start of the
// requested window, not an all-time ledger balance.
type ChartDataPoint struct {
	Date     string // YYYY-MM
	Income   int64
	Expenses int64
	Balance  int64
}

// CategoryExpense is one category's share of spending over a window.
type CategoryExpense struct {
	CategoryID uuid.UUID
	Category   string
	Amount     int64
	Percentage float64
	Color      string
}
