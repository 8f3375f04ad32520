package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChartData builds a monthly time series covering exactly `months` calendar
// months, oldest first, ending at the current month. Months without
// transactions appear as zero-valued points so the series never has gaps.
// The balance accumulates from the window's first month, not from all-time
// history.
func (s *Service) ChartData(ctx context.Context, userID uuid.UUID, months int) ([]ChartDataPoint, error) {
	if months < 1 {
		return nil, fmt.Errorf("window must cover at least one month, got %d", months)
	}

	now := s.now()

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)
	windowEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, 0)

	txs, err := s.transactions.ListByDateRange(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("listing transactions for chart window: %w", err)
	}

	buckets := bucketByMonth(txs)

	points := make([]ChartDataPoint, 0, months)

	var runningBalance int64

	for i := 0; i < months; i++ {
		m := windowStart.AddDate(0, i, 0)
		b := buckets[monthKey{year: m.Year(), month: m.Month()}]

		runningBalance += b.Income - b.Expenses

		points = append(points, ChartDataPoint{
			Date:     m.Format("2006-01"),
			Income:   b.Income,
			Expenses: b.Expenses,
			Balance:  runningBalance,
		})
	}

	return points, nil
}
