package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/adityarp/duit/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=analytics

// TransactionSource supplies transactions for one user dated within
// [start, end).
type TransactionSource interface {
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*transaction.Transaction, error)
}

// AccountSource supplies the sum of account balances for one user.
type AccountSource interface {
	TotalBalance(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Service is the aggregation engine. It owns no state beyond its injected
// collaborators and always reads fresh data, so calls are safe to run
// concurrently.
type Service struct {
	transactions TransactionSource
	accounts     AccountSource

	clampSavingsRate bool
	now              func() time.Time
}

func NewService(transactions TransactionSource, accounts AccountSource, opts ...Option) *Service {
	s := &Service{
		transactions: transactions,
		accounts:     accounts,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Option func(*Service)

// WithClampedSavingsRate keeps the savings rate at zero or above instead of
// letting it go negative when expenses exceed income.
func WithClampedSavingsRate(clamp bool) Option {
	return func(s *Service) { s.clampSavingsRate = clamp }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// MonthlySums returns the per-kind transaction sums for one calendar month.
// A month with no transactions yields a zero bucket.
func (s *Service) MonthlySums(ctx context.Context, userID uuid.UUID, year int, month time.Month) (Bucket, error) {
	start, end := MonthRange(year, month, s.now().Location())

	txs, err := s.transactions.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return Bucket{}, fmt.Errorf("listing transactions for %d-%02d: %w", year, month, err)
	}

	return SumKinds(txs), nil
}

// DashboardStats computes the dashboard summary for the current calendar
// month. The account and transaction queries run in parallel; if either
// fails the whole call fails with zero-valued stats rather than presenting
// partially aggregated numbers.
func (s *Service) DashboardStats(ctx context.Context, userID uuid.UUID) (DashboardStats, error) {
	now := s.now()

	var (
		totalBalance int64
		month        Bucket
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		totalBalance, err = s.accounts.TotalBalance(ctx, userID)
		if err != nil {
			return fmt.Errorf("summing account balances: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		month, err = s.MonthlySums(ctx, userID, now.Year(), now.Month())

		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalBalance:    totalBalance,
		MonthlyIncome:   month.Income,
		MonthlyExpenses: month.Expenses,
		SavingsRate:     s.savingsRate(month.Income, month.Expenses),
	}, nil
}

// savingsRate is the share of monthly income not spent. Zero income yields
// zero, never a division fault.
func (s *Service) savingsRate(income, expenses int64) float64 {
	if income <= 0 {
		return 0
	}

	rate := float64(income-expenses) / float64(income) * 100
	if s.clampSavingsRate && rate < 0 {
		return 0
	}

	return rate
}
