package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error

	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
}

// BalanceAdjuster applies balance deltas to accounts when transactions are
// created or removed. Implemented by the account store.
type BalanceAdjuster interface {
	AdjustBalance(ctx context.Context, userID, accountID uuid.UUID, delta int64) error
}

type Service struct {
	repo     Repository
	accounts BalanceAdjuster
}

func NewService(repo Repository, accounts BalanceAdjuster) *Service {
	return &Service{repo: repo, accounts: accounts}
}

type CreateParams struct {
	Kind          Kind
	Amount        int64
	Description   string
	Date          time.Time
	CategoryID    *uuid.UUID
	AccountID     *uuid.UUID
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
}

// ListFilter narrows ListTransactions. Date bounds are inclusive.
type ListFilter struct {
	Kind       *Kind
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Transaction, error) {
	if params.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	tx := &Transaction{
		UserID:      userID,
		Kind:        params.Kind,
		Amount:      params.Amount,
		Description: params.Description,
		Date:        params.Date,
	}

	switch params.Kind {
	case KindIncome, KindExpense:
		if params.AccountID == nil {
			return nil, ErrMissingFields
		}

		tx.AccountID = params.AccountID
		tx.CategoryID = params.CategoryID
	case KindTransfer:
		// Transfers ignore any category and move money between two accounts.
		if params.FromAccountID == nil || params.ToAccountID == nil {
			return nil, ErrMissingFields
		}

		tx.FromAccountID = params.FromAccountID
		tx.ToAccountID = params.ToAccountID
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", params.Kind)
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.applyBalances(ctx, tx, 1); err != nil {
		return nil, fmt.Errorf("adjusting balances: %w", err)
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

// ListByDateRange returns transactions dated within [start, end).
func (s *Service) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Transaction, error) {
	endInclusive := end.AddDate(0, 0, -1)

	return s.repo.ListTransactions(ctx, userID, ListFilter{
		StartDate: &start,
		EndDate:   &endInclusive,
	})
}

// Update persists the changed transaction. When the amount changed, the
// prior version's effect on account balances is reversed and the new one
// applied, so balances track the edit.
func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if tx.Amount < 0 {
		return ErrInvalidAmount
	}

	prev, err := s.repo.GetTransaction(ctx, tx.UserID, tx.ID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	if prev.Amount == tx.Amount {
		return nil
	}

	if err := s.applyBalances(ctx, prev, -1); err != nil {
		return fmt.Errorf("reversing balances: %w", err)
	}

	if err := s.applyBalances(ctx, tx, 1); err != nil {
		return fmt.Errorf("adjusting balances: %w", err)
	}

	return nil
}

// Delete removes a transaction and reverses its effect on account balances.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := s.repo.GetTransaction(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTransaction(ctx, userID, id); err != nil {
		return err
	}

	if err := s.applyBalances(ctx, tx, -1); err != nil {
		return fmt.Errorf("reversing balances: %w", err)
	}

	return nil
}

// applyBalances adjusts the affected account balances for a transaction.
// sign is 1 when the transaction is created, -1 when it is removed.
func (s *Service) applyBalances(ctx context.Context, tx *Transaction, sign int64) error {
	switch tx.Kind {
	case KindIncome:
		return s.accounts.AdjustBalance(ctx, tx.UserID, *tx.AccountID, sign*tx.Amount)
	case KindExpense:
		return s.accounts.AdjustBalance(ctx, tx.UserID, *tx.AccountID, -sign*tx.Amount)
	case KindTransfer:
		if err := s.accounts.AdjustBalance(ctx, tx.UserID, *tx.FromAccountID, -sign*tx.Amount); err != nil {
			return err
		}

		return s.accounts.AdjustBalance(ctx, tx.UserID, *tx.ToAccountID, sign*tx.Amount)
	}

	return nil
}
