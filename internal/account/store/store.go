package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAccountColumns = `id, user_id, name, type, balance, currency, created_at, updated_at`

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, type, balance, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.UserID,
		acc.Name,
		acc.Type,
		acc.Balance,
		acc.Currency,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, userID, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1 AND user_id = $2`

	var acc account.Account

	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.Balance, &acc.Currency,
		&acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &acc, nil
}

func (s *Store) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accs []*account.Account

	for rows.Next() {
		var acc account.Account

		if err := rows.Scan(
			&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.Balance, &acc.Currency,
			&acc.CreatedAt, &acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accs = append(accs, &acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accs, nil
}

func (s *Store) UpdateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, balance = $3, currency = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		acc.Name,
		acc.Type,
		acc.Balance,
		acc.Currency,
		acc.ID,
		acc.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1 AND user_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

func (s *Store) SumBalances(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing balances: %w", err)
	}

	return total, nil
}

func (s *Store) AdjustBalance(ctx context.Context, userID, accountID uuid.UUID, delta int64) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`

	res, err := s.db.ExecContext(ctx, query, delta, accountID, userID)
	if err != nil {
		return fmt.Errorf("adjusting balance: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}
