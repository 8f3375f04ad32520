package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adityarp/duit/internal/transaction"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()
	categoryID := uuid.New()

	date := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "IncomeCreditsAccount",
			params: transaction.CreateParams{
				Kind:       transaction.KindIncome,
				Amount:     1_000_000,
				Date:       date,
				AccountID:  &accountID,
				CategoryID: &categoryID,
			},
			setupMock: func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster) {
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
				accs.EXPECT().
					AdjustBalance(gomock.Any(), userID, accountID, int64(1_000_000)).
					Return(nil)
			},
		},
		{
			name: "ExpenseDebitsAccount",
			params: transaction.CreateParams{
				Kind:      transaction.KindExpense,
				Amount:    300_000,
				Date:      date,
				AccountID: &accountID,
			},
			setupMock: func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster) {
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
				accs.EXPECT().
					AdjustBalance(gomock.Any(), userID, accountID, int64(-300_000)).
					Return(nil)
			},
		},
		{
			name: "TransferMovesBetweenAccounts",
			params: transaction.CreateParams{
				Kind:          transaction.KindTransfer,
				Amount:        500_000,
				Date:          date,
				FromAccountID: &fromID,
				ToAccountID:   &toID,
			},
			setupMock: func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster) {
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
				accs.EXPECT().
					AdjustBalance(gomock.Any(), userID, fromID, int64(-500_000)).
					Return(nil)
				accs.EXPECT().
					AdjustBalance(gomock.Any(), userID, toID, int64(500_000)).
					Return(nil)
			},
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Kind:      transaction.KindExpense,
				Amount:    -1,
				AccountID: &accountID,
			},
			setupMock: func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster) {},
			wantErr:   transaction.ErrInvalidAmount,
		},
		{
			name: "IncomeWithoutAccount",
			params: transaction.CreateParams{
				Kind:   transaction.KindIncome,
				Amount: 100,
			},
			setupMock: func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster) {},
			wantErr:   transaction.ErrMissingFields,
		},
		{
			name: "TransferWithoutDestination",
			params: transaction.CreateParams{
				Kind:          transaction.KindTransfer,
				Amount:        100,
				FromAccountID: &fromID,
			},
			setupMock: func(repo *transaction.MockRepository, accs *transaction.MockBalanceAdjuster) {},
			wantErr:   transaction.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			accs := transaction.NewMockBalanceAdjuster(ctrl)
			tt.setupMock(repo, accs)

			svc := transaction.NewService(repo, accs)

			tx, err := svc.Create(context.Background(), userID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, tx.UserID)
			assert.Equal(t, tt.params.Amount, tx.Amount)
		})
	}
}

func TestService_Create_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(
		transaction.NewMockRepository(ctrl),
		transaction.NewMockBalanceAdjuster(ctrl),
	)

	_, err := svc.Create(context.Background(), uuid.New(), transaction.CreateParams{
		Kind:   "refund",
		Amount: 100,
	})
	assert.Error(t, err)
}

func TestService_Update_AdjustsBalances(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	txID := uuid.New()

	date := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("AmountChangeRebalancesAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		accs := transaction.NewMockBalanceAdjuster(ctrl)

		prev := &transaction.Transaction{
			ID:        txID,
			UserID:    userID,
			Kind:      transaction.KindIncome,
			Amount:    100_000,
			AccountID: &accountID,
			Date:      date,
		}

		updated := *prev
		updated.Amount = 50_000

		repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(prev, nil)
		repo.EXPECT().UpdateTransaction(gomock.Any(), &updated).Return(nil)

		// The stale credit comes off before the edited amount goes on.
		gomock.InOrder(
			accs.EXPECT().
				AdjustBalance(gomock.Any(), userID, accountID, int64(-100_000)).
				Return(nil),
			accs.EXPECT().
				AdjustBalance(gomock.Any(), userID, accountID, int64(50_000)).
				Return(nil),
		)

		svc := transaction.NewService(repo, accs)

		require.NoError(t, svc.Update(context.Background(), &updated))
	})

	t.Run("ExpenseAmountChange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		accs := transaction.NewMockBalanceAdjuster(ctrl)

		prev := &transaction.Transaction{
			ID:        txID,
			UserID:    userID,
			Kind:      transaction.KindExpense,
			Amount:    30_000,
			AccountID: &accountID,
			Date:      date,
		}

		updated := *prev
		updated.Amount = 45_000

		repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(prev, nil)
		repo.EXPECT().UpdateTransaction(gomock.Any(), &updated).Return(nil)

		gomock.InOrder(
			accs.EXPECT().
				AdjustBalance(gomock.Any(), userID, accountID, int64(30_000)).
				Return(nil),
			accs.EXPECT().
				AdjustBalance(gomock.Any(), userID, accountID, int64(-45_000)).
				Return(nil),
		)

		svc := transaction.NewService(repo, accs)

		require.NoError(t, svc.Update(context.Background(), &updated))
	})

	t.Run("UnchangedAmountLeavesBalancesAlone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		accs := transaction.NewMockBalanceAdjuster(ctrl)

		prev := &transaction.Transaction{
			ID:        txID,
			UserID:    userID,
			Kind:      transaction.KindIncome,
			Amount:    100_000,
			AccountID: &accountID,
			Date:      date,
		}

		updated := *prev
		updated.Description = "renamed"

		repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(prev, nil)
		repo.EXPECT().UpdateTransaction(gomock.Any(), &updated).Return(nil)

		svc := transaction.NewService(repo, accs)

		require.NoError(t, svc.Update(context.Background(), &updated))
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := transaction.NewService(
			transaction.NewMockRepository(ctrl),
			transaction.NewMockBalanceAdjuster(ctrl),
		)

		err := svc.Update(context.Background(), &transaction.Transaction{
			ID:     txID,
			UserID: userID,
			Amount: -1,
		})
		assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().
			GetTransaction(gomock.Any(), userID, txID).
			Return(nil, transaction.ErrNotFound)

		svc := transaction.NewService(repo, transaction.NewMockBalanceAdjuster(ctrl))

		err := svc.Update(context.Background(), &transaction.Transaction{
			ID:     txID,
			UserID: userID,
			Amount: 100,
		})
		assert.ErrorIs(t, err, transaction.ErrNotFound)
	})
}

func TestService_Delete_ReversesBalances(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	txID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	accs := transaction.NewMockBalanceAdjuster(ctrl)

	repo.EXPECT().
		GetTransaction(gomock.Any(), userID, txID).
		Return(&transaction.Transaction{
			ID:        txID,
			UserID:    userID,
			Kind:      transaction.KindExpense,
			Amount:    250_000,
			AccountID: &accountID,
		}, nil)
	repo.EXPECT().DeleteTransaction(gomock.Any(), userID, txID).Return(nil)

	// Deleting an expense puts the money back.
	accs.EXPECT().
		AdjustBalance(gomock.Any(), userID, accountID, int64(250_000)).
		Return(nil)

	svc := transaction.NewService(repo, accs)

	require.NoError(t, svc.Delete(context.Background(), userID, txID))
}

func TestService_Delete_NotFound(t *testing.T) {
	userID := uuid.New()
	txID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), userID, txID).
		Return(nil, transaction.ErrNotFound)

	svc := transaction.NewService(repo, transaction.NewMockBalanceAdjuster(ctrl))

	assert.ErrorIs(t, svc.Delete(context.Background(), userID, txID), transaction.ErrNotFound)
}

func TestService_ListByDateRange(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, start, *filter.StartDate)
			// The exclusive end lands on the last calendar day of the window.
			assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), *filter.EndDate)

			return nil, nil
		})

	svc := transaction.NewService(repo, transaction.NewMockBalanceAdjuster(ctrl))

	_, err := svc.ListByDateRange(context.Background(), userID, start, end)
	require.NoError(t, err)
}
