package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/service"
	mocks "github.com/agrilink/market-service/internal/service/mocks"
	txMocks "github.com/agrilink/market-service/pkg/trm/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWalletService_Withdraw(t *testing.T) {
	farmerID := uuid.New()
	walletID := uuid.New()
	wallet := entities.Wallet{
		ID:       walletID,
		FarmerID: farmerID,
		Balance:  decimal.RequireFromString("150.00"),
	}

	type MockBehavior func(repo *mocks.MockWalletRepo)

	testCases := []struct {
		name         string
		amount       decimal.Decimal
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "OK",
			amount: decimal.RequireFromString("50.00"),
			mockBehavior: func(repo *mocks.MockWalletRepo) {
				repo.EXPECT().GetOrCreateWallet(mock.Anything, farmerID).Return(wallet, nil).Once()
				repo.EXPECT().DebitWallet(mock.Anything, walletID, decimal.RequireFromString("50.00")).
					Return(nil).Once()
				repo.EXPECT().CreateWalletTransaction(mock.Anything, mock.MatchedBy(func(txn entities.WalletTransaction) bool {
					return txn.Type == entities.TransactionDebit &&
						txn.Status == entities.TransactionPending &&
						txn.Amount.Equal(decimal.RequireFromString("50.00"))
				})).Return(entities.WalletTransaction{ID: uuid.New()}, nil).Once()
			},
		},
		{
			name:         "below the minimum",
			amount:       decimal.RequireFromString("9.99"),
			mockBehavior: func(repo *mocks.MockWalletRepo) {},
			wantErr:      entities.ErrBelowMinimum,
		},
		{
			name:   "exactly the minimum passes",
			amount: decimal.RequireFromString("10.00"),
			mockBehavior: func(repo *mocks.MockWalletRepo) {
				repo.EXPECT().GetOrCreateWallet(mock.Anything, farmerID).Return(wallet, nil).Once()
				repo.EXPECT().DebitWallet(mock.Anything, walletID, mock.Anything).Return(nil).Once()
				repo.EXPECT().CreateWalletTransaction(mock.Anything, mock.Anything).
					Return(entities.WalletTransaction{ID: uuid.New()}, nil).Once()
			},
		},
		{
			name:   "insufficient balance",
			amount: decimal.RequireFromString("500.00"),
			mockBehavior: func(repo *mocks.MockWalletRepo) {
				repo.EXPECT().GetOrCreateWallet(mock.Anything, farmerID).Return(wallet, nil).Once()
				repo.EXPECT().DebitWallet(mock.Anything, walletID, mock.Anything).
					Return(entities.ErrInsufficientBalance).Once()
			},
			wantErr: entities.ErrInsufficientBalance,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockWalletRepo(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()
			notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

			tc.mockBehavior(repo)

			svc := service.NewWalletService(logger, repo, tx, notifier, 10)

			_, err := svc.Withdraw(context.Background(), farmerID, tc.amount)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWalletService_Earnings(t *testing.T) {
	farmerID := uuid.New()
	walletID := uuid.New()
	wallet := entities.Wallet{
		ID:             walletID,
		FarmerID:       farmerID,
		Balance:        decimal.RequireFromString("120.00"),
		TotalEarned:    decimal.RequireFromString("200.00"),
		TotalWithdrawn: decimal.RequireFromString("80.00"),
	}
	credits := []entities.WalletTransaction{
		{ID: uuid.New(), Type: entities.TransactionCredit},
	}

	repo := mocks.NewMockWalletRepo(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().GetOrCreateWallet(mock.Anything, farmerID).Return(wallet, nil).Once()
	repo.EXPECT().SumPendingDebits(mock.Anything, walletID).
		Return(decimal.RequireFromString("30.00"), nil).Once()
	repo.EXPECT().RecentCredits(mock.Anything, walletID, uint64(10)).Return(credits, nil).Once()

	svc := service.NewWalletService(logger, repo, tx, notifier, 10)

	summary, err := svc.Earnings(context.Background(), farmerID)
	require.NoError(t, err)

	// balance identity: balance = earned - withdrawn
	assert.True(t, summary.Balance.Equal(summary.TotalEarned.Sub(summary.TotalWithdrawn)))
	assert.True(t, summary.PendingWithdrawals.Equal(decimal.RequireFromString("30.00")))
	assert.Len(t, summary.RecentEarnings, 1)
}
