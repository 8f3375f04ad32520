// Package export renders a user's transactions as CSV for download.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/transaction"
)

// Lister supplies the transactions to export.
type Lister interface {
	List(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type Service struct {
	transactions Lister
}

func NewService(transactions Lister) *Service {
	return &Service{transactions: transactions}
}

var header = []string{"date", "kind", "description", "category", "amount"}

// WriteCSV streams the transactions matching the filter to w, one row per
// transaction, amounts rendered in major units with two decimals.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, userID uuid.UUID, filter transaction.ListFilter) error {
	txs, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		category := ""
		if tx.Category != nil {
			category = tx.Category.Name
		}

		row := []string{
			tx.Date.Format("2006-01-02"),
			string(tx.Kind),
			tx.Description,
			category,
			strconv.FormatFloat(float64(tx.Amount)/100, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Filename builds the attachment name for an export taken at the given time.
func Filename(now time.Time) string {
	return fmt.Sprintf("transactions_%s.csv", now.Format("20060102"))
}
