package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpsertProfile(ctx context.Context, p *Profile) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

type UpdateParams struct {
	DisplayName *string
	Currency    *string
}

// Update applies the given fields over the stored profile, creating it on
// first write.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, params UpdateParams) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if err != ErrNotFound {
			return nil, err
		}

		p = &Profile{ID: userID, Currency: "IDR"}
	}

	if params.DisplayName != nil {
		p.DisplayName = *params.DisplayName
	}

	if params.Currency != nil {
		p.Currency = *params.Currency
	}

	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
