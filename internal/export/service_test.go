package export_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityarp/duit/internal/export"
	"github.com/adityarp/duit/internal/transaction"
)

type stubLister struct {
	txs []*transaction.Transaction
	err error
}

func (s *stubLister) List(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	return s.txs, s.err
}

func TestService_WriteCSV(t *testing.T) {
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	t.Run("RendersRows", func(t *testing.T) {
		lister := &stubLister{
			txs: []*transaction.Transaction{
				{
					ID:          uuid.New(),
					Kind:        transaction.KindExpense,
					Amount:      1250,
					Description: "Coffee beans",
					Date:        date,
					Category:    &transaction.CategoryInfo{ID: uuid.New(), Name: "Food"},
				},
				{
					ID:          uuid.New(),
					Kind:        transaction.KindIncome,
					Amount:      500_000,
					Description: "Salary",
					Date:        date,
				},
			},
		}

		var buf bytes.Buffer

		svc := export.NewService(lister)
		require.NoError(t, svc.WriteCSV(context.Background(), &buf, uuid.New(), transaction.ListFilter{}))

		want := "date,kind,description,category,amount\n" +
			"2025-06-10,expense,Coffee beans,Food,12.50\n" +
			"2025-06-10,income,Salary,,5000.00\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("HeaderOnlyWhenEmpty", func(t *testing.T) {
		var buf bytes.Buffer

		svc := export.NewService(&stubLister{})
		require.NoError(t, svc.WriteCSV(context.Background(), &buf, uuid.New(), transaction.ListFilter{}))

		assert.Equal(t, "date,kind,description,category,amount\n", buf.String())
	})

	t.Run("ListerFailure", func(t *testing.T) {
		svc := export.NewService(&stubLister{err: errors.New("store unreachable")})

		err := svc.WriteCSV(context.Background(), &bytes.Buffer{}, uuid.New(), transaction.ListFilter{})
		assert.Error(t, err)
	})
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "transactions_20250615.csv", export.Filename(now))
}
