package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectBudgetColumns = `
	b.id, b.user_id, b.category_id, c.name, COALESCE(c.color, ''),
	b.amount, b.period, b.start_date, b.end_date, b.created_at
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	var periodStr string

	var catName, catColor sql.NullString

	if err := s.Scan(
		&b.ID, &b.UserID, &b.CategoryID, &catName, &catColor,
		&b.Amount, &periodStr, &b.StartDate, &b.EndDate, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	b.Period = budget.Period(periodStr)

	if catName.Valid {
		b.Category = &budget.CategoryInfo{
			ID:    b.CategoryID,
			Name:  catName.String,
			Color: catColor.String,
		}
	}

	return &b, nil
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, period, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.UserID,
		b.CategoryID,
		b.Amount,
		b.Period,
		b.StartDate,
		b.EndDate,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, userID, id uuid.UUID) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1 AND b.user_id = $2`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	return s.queryBudgets(ctx, query, userID)
}

func (s *Store) ListActiveBudgets(ctx context.Context, userID uuid.UUID, on time.Time) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.user_id = $1 AND b.start_date <= $2 AND b.end_date >= $2
		ORDER BY b.created_at DESC`

	return s.queryBudgets(ctx, query, userID, on)
}

func (s *Store) queryBudgets(ctx context.Context, query string, args ...any) ([]*budget.Budget, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}

func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		UPDATE budgets
		SET amount = $1, period = $2, start_date = $3, end_date = $4
		WHERE id = $5 AND user_id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		b.Amount,
		b.Period,
		b.StartDate,
		b.EndDate,
		b.ID,
		b.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	if affected == 0 {
		return budget.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	if affected == 0 {
		return budget.ErrNotFound
	}

	return nil
}

func (s *Store) SpentAmount(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = 'expense'
			AND date >= $3 AND date <= $4
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, userID, categoryID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing spend: %w", err)
	}

	return total, nil
}
