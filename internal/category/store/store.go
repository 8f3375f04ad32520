package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCategoryColumns = `id, user_id, name, type, COALESCE(color, ''), COALESCE(icon, ''), created_at`

func (s *Store) CreateCategory(ctx context.Context, cat *category.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, color, icon, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		cat.UserID,
		cat.Name,
		cat.Kind,
		cat.Color,
		cat.Icon,
	).Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, userID, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories WHERE id = $1 AND user_id = $2`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return cat, nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID, kind *category.Kind) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories WHERE user_id = $1`

	args := []any{userID}

	if kind != nil {
		query += " AND type = $2"

		args = append(args, *kind)
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

func (s *Store) UpdateCategory(ctx context.Context, cat *category.Category) error {
	query := `
		UPDATE categories
		SET name = $1, color = NULLIF($2, ''), icon = NULLIF($3, '')
		WHERE id = $4 AND user_id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		cat.Name,
		cat.Color,
		cat.Icon,
		cat.ID,
		cat.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	_, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*category.Category, error) {
	var cat category.Category

	var kindStr string

	if err := s.Scan(&cat.ID, &cat.UserID, &cat.Name, &kindStr, &cat.Color, &cat.Icon, &cat.CreatedAt); err != nil {
		return nil, err
	}

	cat.Kind = category.Kind(kindStr)

	return &cat, nil
}
