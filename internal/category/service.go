package category

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateCategory(ctx context.Context, cat *Category) error
	GetCategory(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID, kind *Kind) ([]*Category, error)
	UpdateCategory(ctx context.Context, cat *Category) error
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Kind  Kind
	Color string
	Icon  string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Category, error) {
	cat := &Category{
		UserID: userID,
		Name:   params.Name,
		Kind:   params.Kind,
		Color:  params.Color,
		Icon:   params.Icon,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, userID, id)
}

// List returns the user's categories, optionally filtered by kind,
// ordered by name.
func (s *Service) List(ctx context.Context, userID uuid.UUID, kind *Kind) ([]*Category, error) {
	return s.repo.ListCategories(ctx, userID, kind)
}

// Update changes the category's name, color or icon. The kind is fixed at
// creation and never updated.
func (s *Service) Update(ctx context.Context, cat *Category) error {
	return s.repo.UpdateCategory(ctx, cat)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, userID, id)
}
