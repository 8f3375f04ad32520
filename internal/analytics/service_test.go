package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adityarp/duit/internal/analytics"
	"github.com/adityarp/duit/internal/transaction"
)

// fixedNow pins "the current month" to June 2025 for every test.
var fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestService_DashboardStats(t *testing.T) {
	userID := uuid.New()

	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		clamp     bool
		setupMock func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource)
		want      analytics.DashboardStats
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "NoTransactionsNoAccounts",
			setupMock: func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource) {
				accs.EXPECT().TotalBalance(gomock.Any(), userID).Return(int64(0), nil)
				txs.EXPECT().
					ListByDateRange(gomock.Any(), userID, monthStart, monthEnd).
					Return(nil, nil)
			},
			want: analytics.DashboardStats{},
		},
		{
			name: "IncomeExpensesAndBalance",
			setupMock: func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource) {
				accs.EXPECT().TotalBalance(gomock.Any(), userID).Return(int64(5_000_000), nil)
				txs.EXPECT().
					ListByDateRange(gomock.Any(), userID, monthStart, monthEnd).
					Return([]*transaction.Transaction{
						{Kind: transaction.KindIncome, Amount: 1_000_000, Date: fixedNow},
						{Kind: transaction.KindExpense, Amount: 300_000, Date: fixedNow},
					}, nil)
			},
			want: analytics.DashboardStats{
				TotalBalance:    5_000_000,
				MonthlyIncome:   1_000_000,
				MonthlyExpenses: 300_000,
				SavingsRate:     70,
			},
		},
		{
			name: "ExpensesExceedIncomeSigned",
			setupMock: func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource) {
				accs.EXPECT().TotalBalance(gomock.Any(), userID).Return(int64(0), nil)
				txs.EXPECT().
					ListByDateRange(gomock.Any(), userID, monthStart, monthEnd).
					Return([]*transaction.Transaction{
						{Kind: transaction.KindIncome, Amount: 100_000, Date: fixedNow},
						{Kind: transaction.KindExpense, Amount: 150_000, Date: fixedNow},
					}, nil)
			},
			want: analytics.DashboardStats{
				MonthlyIncome:   100_000,
				MonthlyExpenses: 150_000,
				SavingsRate:     -50,
			},
		},
		{
			name:  "ExpensesExceedIncomeClamped",
			clamp: true,
			setupMock: func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource) {
				accs.EXPECT().TotalBalance(gomock.Any(), userID).Return(int64(0), nil)
				txs.EXPECT().
					ListByDateRange(gomock.Any(), userID, monthStart, monthEnd).
					Return([]*transaction.Transaction{
						{Kind: transaction.KindIncome, Amount: 100_000, Date: fixedNow},
						{Kind: transaction.KindExpense, Amount: 150_000, Date: fixedNow},
					}, nil)
			},
			want: analytics.DashboardStats{
				MonthlyIncome:   100_000,
				MonthlyExpenses: 150_000,
				SavingsRate:     0,
			},
		},
		{
			name: "AccountSourceFailureFailsWhole",
			setupMock: func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource) {
				accs.EXPECT().
					TotalBalance(gomock.Any(), userID).
					Return(int64(0), errors.New("store unreachable"))
				txs.EXPECT().
					ListByDateRange(gomock.Any(), userID, monthStart, monthEnd).
					Return(nil, nil).
					MaxTimes(1)
			},
			want:    analytics.DashboardStats{},
			wantErr: true,
		},
		{
			name: "TransactionSourceFailureFailsWhole",
			setupMock: func(txs *analytics.MockTransactionSource, accs *analytics.MockAccountSource) {
				accs.EXPECT().
					TotalBalance(gomock.Any(), userID).
					Return(int64(9_999), nil).
					MaxTimes(1)
				txs.EXPECT().
					ListByDateRange(gomock.Any(), userID, monthStart, monthEnd).
					Return(nil, errors.New("store unreachable"))
			},
			want:    analytics.DashboardStats{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txs := analytics.NewMockTransactionSource(ctrl)
			accs := analytics.NewMockAccountSource(ctrl)
			tt.setupMock(txs, accs)

			svc := analytics.NewService(txs, accs,
				analytics.WithClock(fixedClock),
				analytics.WithClampedSavingsRate(tt.clamp),
			)

			got, err := svc.DashboardStats(context.Background(), userID)

			if tt.wantErr {
				require.Error(t, err)
				// Partial numbers never leak out alongside a failure.
				assert.Equal(t, analytics.DashboardStats{}, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_MonthlySums(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := analytics.NewMockTransactionSource(ctrl)
	accs := analytics.NewMockAccountSource(ctrl)

	txs.EXPECT().
		ListByDateRange(gomock.Any(), userID,
			time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		).
		Return([]*transaction.Transaction{
			{Kind: transaction.KindIncome, Amount: 500},
			{Kind: transaction.KindTransfer, Amount: 250},
		}, nil)

	svc := analytics.NewService(txs, accs, analytics.WithClock(fixedClock))

	got, err := svc.MonthlySums(context.Background(), userID, 2025, time.February)
	require.NoError(t, err)
	assert.Equal(t, analytics.Bucket{Income: 500, Transfers: 250}, got)
}
