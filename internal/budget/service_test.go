package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adityarp/duit/internal/budget"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).Return(nil)

		svc := budget.NewService(repo)

		b, err := svc.Create(context.Background(), userID, budget.CreateParams{
			CategoryID: categoryID,
			Amount:     500_000,
			Period:     budget.PeriodMonthly,
			StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, userID, b.UserID)
		assert.Equal(t, int64(500_000), b.Amount)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := budget.NewService(budget.NewMockRepository(ctrl))

		_, err := svc.Create(context.Background(), userID, budget.CreateParams{
			CategoryID: categoryID,
			Amount:     -1,
		})
		assert.ErrorIs(t, err, budget.ErrInvalidAmount)
	})
}

func TestService_Get(t *testing.T) {
	userID := uuid.New()
	budgetID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		want := &budget.Budget{ID: budgetID, UserID: userID, Amount: 500_000}

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().GetBudget(gomock.Any(), userID, budgetID).Return(want, nil)

		svc := budget.NewService(repo)

		got, err := svc.Get(context.Background(), userID, budgetID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			GetBudget(gomock.Any(), userID, budgetID).
			Return(nil, budget.ErrNotFound)

		svc := budget.NewService(repo)

		_, err := svc.Get(context.Background(), userID, budgetID)
		assert.ErrorIs(t, err, budget.ErrNotFound)
	})
}

func TestService_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := &budget.Budget{
			ID:         uuid.New(),
			UserID:     userID,
			CategoryID: uuid.New(),
			Amount:     750_000,
			Period:     budget.PeriodMonthly,
		}

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().UpdateBudget(gomock.Any(), b).Return(nil)

		svc := budget.NewService(repo)

		require.NoError(t, svc.Update(context.Background(), b))
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := budget.NewService(budget.NewMockRepository(ctrl))

		err := svc.Update(context.Background(), &budget.Budget{
			ID:     uuid.New(),
			UserID: userID,
			Amount: -1,
		})
		assert.ErrorIs(t, err, budget.ErrInvalidAmount)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			UpdateBudget(gomock.Any(), gomock.Any()).
			Return(budget.ErrNotFound)

		svc := budget.NewService(repo)

		err := svc.Update(context.Background(), &budget.Budget{
			ID:     uuid.New(),
			UserID: userID,
			Amount: 100,
		})
		assert.ErrorIs(t, err, budget.ErrNotFound)
	})
}

func TestService_Current(t *testing.T) {
	userID := uuid.New()

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	newBudget := func(amount int64) *budget.Budget {
		return &budget.Budget{
			ID:         uuid.New(),
			UserID:     userID,
			CategoryID: uuid.New(),
			Amount:     amount,
			Period:     budget.PeriodMonthly,
			StartDate:  start,
			EndDate:    end,
		}
	}

	t.Run("JoinsSpendWithProgress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		overBudget := newBudget(500_000)
		untouched := newBudget(200_000)

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			ListActiveBudgets(gomock.Any(), userID, fixedNow).
			Return([]*budget.Budget{overBudget, untouched}, nil)
		repo.EXPECT().
			SpentAmount(gomock.Any(), userID, overBudget.CategoryID, start, end).
			Return(int64(600_000), nil)
		repo.EXPECT().
			SpentAmount(gomock.Any(), userID, untouched.CategoryID, start, end).
			Return(int64(0), nil)

		svc := budget.NewService(repo, budget.WithClock(fixedClock))

		got, err := svc.Current(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, budget.Progress{
			Spent:      600_000,
			Percentage: 100,
			Remaining:  -100_000,
			Status:     budget.StatusOverBudget,
		}, got[0].Progress)

		assert.Equal(t, budget.Progress{
			Spent:      0,
			Percentage: 0,
			Remaining:  200_000,
			Status:     budget.StatusOnTrack,
		}, got[1].Progress)
	})

	t.Run("NoActiveBudgets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			ListActiveBudgets(gomock.Any(), userID, fixedNow).
			Return(nil, nil)

		svc := budget.NewService(repo, budget.WithClock(fixedClock))

		got, err := svc.Current(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("SpendLookupFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := newBudget(500_000)

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			ListActiveBudgets(gomock.Any(), userID, fixedNow).
			Return([]*budget.Budget{b}, nil)
		repo.EXPECT().
			SpentAmount(gomock.Any(), userID, b.CategoryID, start, end).
			Return(int64(0), errors.New("store unreachable"))

		svc := budget.NewService(repo, budget.WithClock(fixedClock))

		_, err := svc.Current(context.Background(), userID)
		assert.Error(t, err)
	})
}
