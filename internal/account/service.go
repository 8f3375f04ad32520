package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*Account, error)
	UpdateAccount(ctx context.Context, acc *Account) error
	DeleteAccount(ctx context.Context, userID, id uuid.UUID) error

	SumBalances(ctx context.Context, userID uuid.UUID) (int64, error)
	AdjustBalance(ctx context.Context, userID, accountID uuid.UUID, delta int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Type     string
	Balance  int64
	Currency string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Account, error) {
	acc := &Account{
		UserID:   userID,
		Name:     params.Name,
		Type:     params.Type,
		Balance:  params.Balance,
		Currency: params.Currency,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, userID)
}

func (s *Service) Update(ctx context.Context, acc *Account) error {
	return s.repo.UpdateAccount(ctx, acc)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, userID, id)
}

// TotalBalance sums the balances of all the user's accounts. Mixed-currency
// sums are returned as-is, there is no conversion.
func (s *Service) TotalBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.SumBalances(ctx, userID)
}

func (s *Service) AdjustBalance(ctx context.Context, userID, accountID uuid.UUID, delta int64) error {
	return s.repo.AdjustBalance(ctx, userID, accountID, delta)
}
