package analytics

import (
	"time"

	"github.com/adityarp/duit/internal/transaction"
)

// Bucket holds the per-kind sums for a group of transactions. Transfers are
// tracked separately and never counted as income or expenses.
type Bucket struct {
	Income    int64
	Expenses  int64
	Transfers int64
}

// MonthRange returns the half-open interval [first of month, first of next
// month) in the given location. A transaction dated exactly on the next
// month's first instant falls outside the range.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 1, 0)
}

// SumKinds accumulates transaction amounts into per-kind sums.
func SumKinds(txs []*transaction.Transaction) Bucket {
	var b Bucket

	for _, tx := range txs {
		switch tx.Kind {
		case transaction.KindIncome:
			b.Income += tx.Amount
		case transaction.KindExpense:
			b.Expenses += tx.Amount
		case transaction.KindTransfer:
			b.Transfers += tx.Amount
		}
	}

	return b
}

type monthKey struct {
	year  int
	month time.Month
}

func bucketByMonth(txs []*transaction.Transaction) map[monthKey]Bucket {
	buckets := make(map[monthKey]Bucket)

	for _, tx := range txs {
		k := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}

		b := buckets[k]

		switch tx.Kind {
		case transaction.KindIncome:
			b.Income += tx.Amount
		case transaction.KindExpense:
			b.Expenses += tx.Amount
		case transaction.KindTransfer:
			b.Transfers += tx.Amount
		}

		buckets[k] = b
	}

	return buckets
}
