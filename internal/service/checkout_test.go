package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

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

func TestCheckoutService_Checkout(t *testing.T) {
	consumerID := uuid.New()
	cartID := uuid.New()
	farmerA := uuid.New()
	farmerB := uuid.New()
	cart := entities.Cart{ID: cartID, ConsumerID: consumerID}

	line := func(farmerID uuid.UUID, price int64, qty, stock int) entities.CartLine {
		return entities.CartLine{
			CartItem: entities.CartItem{
				ID:          uuid.New(),
				CartID:      cartID,
				ProductID:   uuid.New(),
				Quantity:    qty,
				PriceAtTime: decimal.NewFromInt(price),
			},
			ProductName:  "product",
			FarmerID:     farmerID,
			CurrentPrice: decimal.NewFromInt(price),
			Stock:        stock,
			IsActive:     true,
		}
	}

	dbError := errors.New("db error")

	type MockBehavior func(repo *mocks.MockCheckoutRepo)

	testCases := []struct {
		name         string
		lines        []entities.CartLine
		mockBehavior MockBehavior
		wantOrders   int
		wantErr      error
	}{
		{
			name: "one order per farmer",
			lines: []entities.CartLine{
				line(farmerA, 10, 2, 5),
				line(farmerB, 3, 4, 4),
				line(farmerA, 5, 1, 1),
			},
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = uuid.New()
						return o, nil
					}).Times(2)
				repo.EXPECT().CreateOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				repo.EXPECT().DecrementStock(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)
				repo.EXPECT().ClearCart(mock.Anything, cartID).Return(nil).Once()
			},
			wantOrders: 2,
		},
		{
			name:         "empty cart",
			lines:        nil,
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {},
			wantErr:      entities.ErrEmptyCart,
		},
		{
			name: "inactive product rejects the whole checkout",
			lines: func() []entities.CartLine {
				inactive := line(farmerA, 10, 1, 5)
				inactive.IsActive = false
				return []entities.CartLine{line(farmerB, 3, 1, 5), inactive}
			}(),
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {},
			wantErr:      &entities.ProductUnavailableError{},
		},
		{
			name:         "insufficient stock rejects the whole checkout",
			lines:        []entities.CartLine{line(farmerA, 10, 3, 2)},
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {},
			wantErr:      entities.ErrInsufficientStock,
		},
		{
			name:  "stock raced away inside the transaction",
			lines: []entities.CartLine{line(farmerA, 10, 2, 5)},
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = uuid.New()
						return o, nil
					}).Once()
				repo.EXPECT().CreateOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().DecrementStock(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "order insert fails",
			lines: []entities.CartLine{line(farmerA, 10, 2, 5)},
			mockBehavior: func(repo *mocks.MockCheckoutRepo) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCheckoutRepo(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			repo.EXPECT().GetOrCreateCart(mock.Anything, consumerID).Return(cart, nil).Once()
			repo.EXPECT().CartLines(mock.Anything, cartID).Return(tc.lines, nil).Once()
			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()
			notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

			tc.mockBehavior(repo)

			svc := service.NewCheckoutService(logger, repo, tx, notifier, 72*time.Hour)

			orders, err := svc.Checkout(context.Background(), consumerID, "12 Main St")

			if tc.wantErr != nil {
				var unavailable *entities.ProductUnavailableError
				if errors.As(tc.wantErr, &unavailable) {
					assert.ErrorAs(t, err, &unavailable)
				} else {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, tc.wantOrders)
		})
	}
}

func TestCheckoutService_Checkout_Amounts(t *testing.T) {
	consumerID := uuid.New()
	cartID := uuid.New()
	farmerA := uuid.New()
	farmerB := uuid.New()

	mkLine := func(farmerID uuid.UUID, price string, qty int) entities.CartLine {
		return entities.CartLine{
			CartItem: entities.CartItem{
				ID:          uuid.New(),
				CartID:      cartID,
				ProductID:   uuid.New(),
				Quantity:    qty,
				PriceAtTime: decimal.RequireFromString(price),
			},
			FarmerID: farmerID,
			Stock:    100,
			IsActive: true,
		}
	}

	lines := []entities.CartLine{
		mkLine(farmerA, "10.50", 2), // 21.00
		mkLine(farmerB, "3.25", 4),  // 13.00
		mkLine(farmerA, "5.00", 1),  // 5.00
	}

	repo := mocks.NewMockCheckoutRepo(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().GetOrCreateCart(mock.Anything, consumerID).
		Return(entities.Cart{ID: cartID, ConsumerID: consumerID}, nil).Once()
	repo.EXPECT().CartLines(mock.Anything, cartID).Return(lines, nil).Once()
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Once()
	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = uuid.New()
			return o, nil
		}).Times(2)
	repo.EXPECT().CreateOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	repo.EXPECT().DecrementStock(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)
	repo.EXPECT().ClearCart(mock.Anything, cartID).Return(nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	svc := service.NewCheckoutService(logger, repo, tx, notifier, 72*time.Hour)

	orders, err := svc.Checkout(context.Background(), consumerID, "12 Main St")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	byFarmer := map[uuid.UUID]entities.Order{}
	for _, o := range orders {
		byFarmer[o.FarmerID] = o
	}

	orderA := byFarmer[farmerA]
	orderB := byFarmer[farmerB]
	assert.True(t, orderA.TotalAmount.Equal(decimal.RequireFromString("26.00")), orderA.TotalAmount.String())
	assert.True(t, orderB.TotalAmount.Equal(decimal.RequireFromString("13.00")), orderB.TotalAmount.String())
	assert.Len(t, orderA.Items, 2)
	assert.Len(t, orderB.Items, 1)
	assert.Equal(t, entities.OrderStatusPending, orderA.Status)
	assert.NotEmpty(t, orderA.OrderNumber)
	assert.NotEqual(t, orderA.OrderNumber, orderB.OrderNumber)

	// items subtotal must reconcile with the order total
	sum := decimal.Zero
	for _, it := range orderA.Items {
		sum = sum.Add(it.Subtotal)
	}
	assert.True(t, sum.Equal(orderA.TotalAmount))
}

func TestCheckoutService_Checkout_RacedStockReportsNoCount(t *testing.T) {
	consumerID := uuid.New()
	cartID := uuid.New()

	// stock looked fine when the cart was read; the conditional decrement
	// loses anyway because a concurrent checkout got there first
	lines := []entities.CartLine{
		{
			CartItem: entities.CartItem{
				ID:          uuid.New(),
				CartID:      cartID,
				ProductID:   uuid.New(),
				Quantity:    2,
				PriceAtTime: decimal.NewFromInt(10),
			},
			ProductName: "eggs",
			FarmerID:    uuid.New(),
			Stock:       5,
			IsActive:    true,
		},
	}

	repo := mocks.NewMockCheckoutRepo(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().GetOrCreateCart(mock.Anything, consumerID).
		Return(entities.Cart{ID: cartID, ConsumerID: consumerID}, nil).Once()
	repo.EXPECT().CartLines(mock.Anything, cartID).Return(lines, nil).Once()
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Once()
	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = uuid.New()
			return o, nil
		}).Once()
	repo.EXPECT().CreateOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().DecrementStock(mock.Anything, lines[0].ProductID, 2).
		Return(entities.ErrInsufficientStock).Once()

	svc := service.NewCheckoutService(logger, repo, tx, notifier, 72*time.Hour)

	_, err := svc.Checkout(context.Background(), consumerID, "12 Main St")
	require.ErrorIs(t, err, entities.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "eggs")

	// the pre-transaction stock read is stale here, so the error must not
	// carry an availability count the way the validation pass does
	var typed *entities.InsufficientStockError
	assert.False(t, errors.As(err, &typed))
}
