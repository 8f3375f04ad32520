package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/adityarp/duit/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT id, COALESCE(display_name, ''), currency, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p profile.Profile

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.DisplayName, &p.Currency, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &p, nil
}

func (s *Store) UpsertProfile(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, display_name, currency, created_at)
		VALUES ($1, NULLIF($2, ''), $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name, currency = EXCLUDED.currency, updated_at = NOW()
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.ID, p.DisplayName, p.Currency).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	return nil
}
