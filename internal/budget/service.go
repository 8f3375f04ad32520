package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, userID, id uuid.UUID) (*Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	ListActiveBudgets(ctx context.Context, userID uuid.UUID, on time.Time) ([]*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, userID, id uuid.UUID) error

	// SpentAmount sums expense-kind transaction amounts for the category
	// within [start, end] inclusive.
	SpentAmount(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (int64, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type CreateParams struct {
	CategoryID uuid.UUID
	Amount     int64
	Period     Period
	StartDate  time.Time
	EndDate    time.Time
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Budget, error) {
	if params.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	b := &Budget{
		UserID:     userID,
		CategoryID: params.CategoryID,
		Amount:     params.Amount,
		Period:     params.Period,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, userID)
}

func (s *Service) Update(ctx context.Context, b *Budget) error {
	if b.Amount < 0 {
		return ErrInvalidAmount
	}

	return s.repo.UpdateBudget(ctx, b)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, userID, id)
}

// WithProgress pairs a budget with its derived progress figures.
type WithProgress struct {
	Budget   *Budget
	Progress Progress
}

// Current returns the budgets whose date range covers today, each joined
// with the spend recorded against its category in that range. A budget with
// no matching transactions reports zero spend, not an error.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) ([]WithProgress, error) {
	budgets, err := s.repo.ListActiveBudgets(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("listing active budgets: %w", err)
	}

	out := make([]WithProgress, 0, len(budgets))

	for _, b := range budgets {
		spent, err := s.repo.SpentAmount(ctx, userID, b.CategoryID, b.StartDate, b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("summing spend for budget %s: %w", b.ID, err)
		}

		out = append(out, WithProgress{Budget: b, Progress: Evaluate(b.Amount, spent)})
	}

	return out, nil
}
