package analytics

import (
	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/analytics"
)

type statsResponse struct {
	TotalBalance    int64   `json:"totalBalance"`
	MonthlyIncome   int64   `json:"monthlyIncome"`
	MonthlyExpenses int64   `json:"monthlyExpenses"`
	SavingsRate     float64 `json:"savingsRate"`
}

func toStatsResponse(stats analytics.DashboardStats) statsResponse {
	return statsResponse(stats)
}

type chartPointResponse struct {
	Date     string `json:"date"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Balance  int64  `json:"balance"`
}

func toChartResponse(points []analytics.ChartDataPoint) []chartPointResponse {
	resp := make([]chartPointResponse, len(points))
	for i, p := range points {
		resp[i] = chartPointResponse(p)
	}

	return resp
}

type categoryExpenseResponse struct {
	CategoryID uuid.UUID `json:"category_id"`
	Category   string    `json:"category"`
	Amount     int64     `json:"amount"`
	Percentage float64   `json:"percentage"`
	Color      string    `json:"color"`
}

func toCategoryResponse(entries []analytics.CategoryExpense) []categoryExpenseResponse {
	resp := make([]categoryExpenseResponse, len(entries))
	for i, e := range entries {
		resp[i] = categoryExpenseResponse(e)
	}

	return resp
}
