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

func TestOrderService_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	consumerID := uuid.New()
	farmerID := uuid.New()
	walletID := uuid.New()

	baseOrder := func(status entities.OrderStatus) entities.Order {
		return entities.Order{
			ID:          orderID,
			OrderNumber: "ORD-20260801120000-ABCD1234",
			ConsumerID:  consumerID,
			FarmerID:    farmerID,
			Status:      status,
			TotalAmount: decimal.RequireFromString("100.00"),
			Items: []entities.OrderItem{
				{ProductID: uuid.New(), Quantity: 2},
				{ProductID: uuid.New(), Quantity: 1},
			},
		}
	}

	type MockBehavior func(repo *mocks.MockOrderRepo)

	testCases := []struct {
		name         string
		actor        service.Actor
		order        entities.Order
		target       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "farmer confirms pending order",
			actor:  service.Actor{ID: farmerID, Role: entities.RoleFarmer},
			order:  baseOrder(entities.OrderStatusPending),
			target: entities.OrderStatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().
					TransitionOrderStatus(mock.Anything, orderID, entities.OrderStatusPending, entities.OrderStatusConfirmed).
					Return(true, nil).Once()
			},
		},
		{
			name:   "delivery settles the farmer wallet",
			actor:  service.Actor{ID: farmerID, Role: entities.RoleFarmer},
			order:  baseOrder(entities.OrderStatusOutForDelivery),
			target: entities.OrderStatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().
					TransitionOrderStatus(mock.Anything, orderID, entities.OrderStatusOutForDelivery, entities.OrderStatusDelivered).
					Return(true, nil).Once()
				repo.EXPECT().GetOrCreateWallet(mock.Anything, farmerID).
					Return(entities.Wallet{ID: walletID, FarmerID: farmerID}, nil).Once()
				// 100.00 minus 12.5% commission
				repo.EXPECT().CreditWallet(mock.Anything, walletID, decimal.RequireFromString("87.50")).
					Return(nil).Once()
				repo.EXPECT().CreateWalletTransaction(mock.Anything, mock.MatchedBy(func(txn entities.WalletTransaction) bool {
					return txn.Type == entities.TransactionCredit &&
						txn.Status == entities.TransactionCompleted &&
						txn.Amount.Equal(decimal.RequireFromString("87.50")) &&
						txn.OrderID != nil && *txn.OrderID == orderID
				})).Return(entities.WalletTransaction{ID: uuid.New()}, nil).Once()
			},
		},
		{
			name:   "lost race does not settle",
			actor:  service.Actor{ID: farmerID, Role: entities.RoleFarmer},
			order:  baseOrder(entities.OrderStatusOutForDelivery),
			target: entities.OrderStatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().
					TransitionOrderStatus(mock.Anything, orderID, entities.OrderStatusOutForDelivery, entities.OrderStatusDelivered).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "cancellation restores stock",
			actor:  service.Actor{ID: consumerID, Role: entities.RoleConsumer},
			order:  baseOrder(entities.OrderStatusPending),
			target: entities.OrderStatusCancelled,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().
					TransitionOrderStatus(mock.Anything, orderID, entities.OrderStatusPending, entities.OrderStatusCancelled).
					Return(true, nil).Once()
				repo.EXPECT().RestoreStock(mock.Anything, mock.Anything, 2).Return(nil).Once()
				repo.EXPECT().RestoreStock(mock.Anything, mock.Anything, 1).Return(nil).Once()
			},
		},
		{
			name:         "consumer cannot advance the order",
			actor:        service.Actor{ID: consumerID, Role: entities.RoleConsumer},
			order:        baseOrder(entities.OrderStatusPending),
			target:       entities.OrderStatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "farmer cannot touch another farmer's order",
			actor:        service.Actor{ID: uuid.New(), Role: entities.RoleFarmer},
			order:        baseOrder(entities.OrderStatusPending),
			target:       entities.OrderStatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "delivered is terminal",
			actor:        service.Actor{ID: farmerID, Role: entities.RoleFarmer},
			order:        baseOrder(entities.OrderStatusDelivered),
			target:       entities.OrderStatusCancelled,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "cannot skip states",
			actor:        service.Actor{ID: farmerID, Role: entities.RoleFarmer},
			order:        baseOrder(entities.OrderStatusPending),
			target:       entities.OrderStatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(tc.order, nil).Once()
			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()
			notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

			tc.mockBehavior(repo)

			svc := service.NewOrderService(logger, repo, tx, notifier, 12.5)

			got, err := svc.UpdateStatus(context.Background(), tc.actor, orderID, tc.target)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, got.Status)
		})
	}
}

func TestOrderService_Order(t *testing.T) {
	orderID := uuid.New()
	consumerID := uuid.New()
	farmerID := uuid.New()
	order := entities.Order{ID: orderID, ConsumerID: consumerID, FarmerID: farmerID}

	testCases := []struct {
		name    string
		actor   service.Actor
		wantErr error
	}{
		{name: "consumer sees own order", actor: service.Actor{ID: consumerID, Role: entities.RoleConsumer}},
		{name: "farmer sees own order", actor: service.Actor{ID: farmerID, Role: entities.RoleFarmer}},
		{name: "admin sees everything", actor: service.Actor{ID: uuid.New(), Role: entities.RoleAdmin}},
		{name: "stranger is rejected", actor: service.Actor{ID: uuid.New(), Role: entities.RoleConsumer}, wantErr: entities.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(order, nil).Once()

			svc := service.NewOrderService(logger, repo, tx, notifier, 12.5)

			got, err := svc.Order(context.Background(), tc.actor, orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
		})
	}
}
