package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adityarp/duit/internal/transaction"
)

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, time.June, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), end)

	// A transaction dated exactly on the next month's first instant sits
	// outside the half-open range.
	boundary := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, boundary.Before(end))

	lastInstant := end.Add(-time.Nanosecond)
	assert.True(t, lastInstant.Before(end))
	assert.False(t, lastInstant.Before(start))
}

func TestMonthRange_YearRollover(t *testing.T) {
	start, end := MonthRange(2024, time.December, time.UTC)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestSumKinds(t *testing.T) {
	type testCase struct {
		name string
		txs  []*transaction.Transaction
		want Bucket
	}

	tests := []testCase{
		{
			name: "Empty",
			txs:  nil,
			want: Bucket{},
		},
		{
			name: "MixedKinds",
			txs: []*transaction.Transaction{
				{Kind: transaction.KindIncome, Amount: 1_000_000},
				{Kind: transaction.KindExpense, Amount: 300_000},
				{Kind: transaction.KindExpense, Amount: 50_000},
				{Kind: transaction.KindTransfer, Amount: 200_000},
			},
			want: Bucket{Income: 1_000_000, Expenses: 350_000, Transfers: 200_000},
		},
		{
			name: "TransfersExcludedFromIncomeAndExpenses",
			txs: []*transaction.Transaction{
				{Kind: transaction.KindTransfer, Amount: 500_000},
			},
			want: Bucket{Transfers: 500_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumKinds(tt.txs))
		})
	}
}

func TestBucketByMonth(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	txs := []*transaction.Transaction{
		{Kind: transaction.KindIncome, Amount: 100, Date: date(2025, time.January, 5)},
		{Kind: transaction.KindExpense, Amount: 40, Date: date(2025, time.January, 28)},
		{Kind: transaction.KindIncome, Amount: 200, Date: date(2025, time.March, 1)},
	}

	buckets := bucketByMonth(txs)

	assert.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Income: 100, Expenses: 40}, buckets[monthKey{2025, time.January}])
	assert.Equal(t, Bucket{Income: 200}, buckets[monthKey{2025, time.March}])

	// February never saw a transaction, so it has no bucket; the zero value
	// stands in for it downstream.
	assert.Equal(t, Bucket{}, buckets[monthKey{2025, time.February}])
}
