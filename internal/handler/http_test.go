package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/handler"
	mocks "github.com/agrilink/market-service/internal/handler/mocks"
	"github.com/agrilink/market-service/internal/middleware"
	"github.com/agrilink/market-service/internal/service"
	"github.com/agrilink/market-service/pkg/token"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) (*middleware.Auth, *token.Manager) {
	t.Helper()
	tokens := token.NewManager("test-secret-at-least-16-bytes", time.Hour)
	return middleware.NewAuth(tokens), tokens
}

func bearer(t *testing.T, tokens *token.Manager, userID uuid.UUID, role entities.Role) string {
	t.Helper()
	raw, err := tokens.Issue(userID, string(role))
	require.NoError(t, err)
	return "Bearer " + raw
}

func TestOrderHandler_Checkout(t *testing.T) {
	consumerID := uuid.New()
	farmerID := uuid.New()

	orders := []entities.Order{
		{
			ID:          uuid.New(),
			OrderNumber: "ORD-20250101000000-ABCD1234",
			ConsumerID:  consumerID,
			FarmerID:    farmerID,
			Status:      entities.OrderStatusPending,
			TotalAmount: decimal.RequireFromString("26.00"),
		},
	}

	testCases := []struct {
		name         string
		role         entities.Role
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			role: entities.RoleConsumer,
			body: `{"shipping_address":"12 Main St"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					Checkout(mock.Anything, consumerID, "12 Main St").
					Return(orders, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"ORD-20250101000000-ABCD1234"`,
		},
		{
			name: "empty cart",
			role: entities.RoleConsumer,
			body: `{"shipping_address":"12 Main St"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					Checkout(mock.Anything, consumerID, "12 Main St").
					Return(nil, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "out of stock",
			role: entities.RoleConsumer,
			body: `{"shipping_address":"12 Main St"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					Checkout(mock.Anything, consumerID, "12 Main St").
					Return(nil, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"insufficient stock"`,
		},
		{
			name:         "missing address fails validation",
			role:         entities.RoleConsumer,
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "farmer cannot checkout",
			role:         entities.RoleFarmer,
			body:         `{"shipping_address":"12 Main St"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"forbidden"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkout := mocks.NewMockCheckoutService(t)
			orderSvc := mocks.NewMockOrderService(t)
			tc.mockBehavior(checkout)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			auth, tokens := newTestAuth(t)
			h := handler.NewOrderHandler(logger, checkout, orderSvc, auth)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Authorization", bearer(t, tokens, consumerID, tc.role))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	farmerID := uuid.New()
	orderID := uuid.New()

	delivered := entities.Order{
		ID:       orderID,
		FarmerID: farmerID,
		Status:   entities.OrderStatusDelivered,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, service.Actor{ID: farmerID, Role: entities.RoleFarmer}, orderID, entities.OrderStatusDelivered).
					Return(delivered, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"delivered"`,
		},
		{
			name: "invalid transition",
			body: `{"status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, mock.Anything, orderID, entities.OrderStatusDelivered).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"invalid status transition"`,
		},
		{
			name: "not the owner",
			body: `{"status":"confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, mock.Anything, orderID, entities.OrderStatusConfirmed).
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name:         "unknown status fails validation",
			body:         `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkout := mocks.NewMockCheckoutService(t)
			orderSvc := mocks.NewMockOrderService(t)
			tc.mockBehavior(orderSvc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			auth, tokens := newTestAuth(t)
			h := handler.NewOrderHandler(logger, checkout, orderSvc, auth)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.String()+"/status", strings.NewReader(tc.body))
			req.Header.Set("Authorization", bearer(t, tokens, farmerID, entities.RoleFarmer))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestOrderHandler_Unauthorized(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth, _ := newTestAuth(t)
	h := handler.NewOrderHandler(logger, mocks.NewMockCheckoutService(t), mocks.NewMockOrderService(t), auth)

	r := chi.NewRouter()
	h.Init(r)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "no token"},
		{name: "garbage token", token: "Bearer not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", tc.token)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestWalletHandler_Withdraw(t *testing.T) {
	farmerID := uuid.New()

	pendingTxn := entities.WalletTransaction{
		ID:     uuid.New(),
		Type:   entities.TransactionDebit,
		Status: entities.TransactionPending,
		Amount: decimal.RequireFromString("50.00"),
	}

	testCases := []struct {
		name         string
		role         entities.Role
		body         string
		mockBehavior func(svc *mocks.MockWalletService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			role: entities.RoleFarmer,
			body: `{"amount":"50.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().
					Withdraw(mock.Anything, farmerID, decimal.RequireFromString("50.00")).
					Return(pendingTxn, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name: "below minimum",
			role: entities.RoleFarmer,
			body: `{"amount":"5.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().
					Withdraw(mock.Anything, farmerID, decimal.RequireFromString("5.00")).
					Return(entities.WalletTransaction{}, entities.ErrBelowMinimum).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"amount below minimum withdrawal"`,
		},
		{
			name: "insufficient balance",
			role: entities.RoleFarmer,
			body: `{"amount":"500.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().
					Withdraw(mock.Anything, farmerID, decimal.RequireFromString("500.00")).
					Return(entities.WalletTransaction{}, entities.ErrInsufficientBalance).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"insufficient balance"`,
		},
		{
			name:         "negative amount",
			role:         entities.RoleFarmer,
			body:         `{"amount":"-10.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid amount"`,
		},
		{
			name:         "consumer has no wallet",
			role:         entities.RoleConsumer,
			body:         `{"amount":"50.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"forbidden"`,
		},
		{
			name: "internal error",
			role: entities.RoleFarmer,
			body: `{"amount":"50.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().
					Withdraw(mock.Anything, farmerID, decimal.RequireFromString("50.00")).
					Return(entities.WalletTransaction{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			auth, tokens := newTestAuth(t)
			h := handler.NewWalletHandler(logger, svc, auth)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/wallet/withdraw", strings.NewReader(tc.body))
			req.Header.Set("Authorization", bearer(t, tokens, farmerID, tc.role))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestWalletHandler_Earnings(t *testing.T) {
	farmerID := uuid.New()

	summary := entities.EarningsSummary{
		Balance:            decimal.RequireFromString("120.00"),
		TotalEarned:        decimal.RequireFromString("200.00"),
		TotalWithdrawn:     decimal.RequireFromString("80.00"),
		PendingWithdrawals: decimal.RequireFromString("30.00"),
		RecentEarnings: []entities.WalletTransaction{
			{ID: uuid.New(), Type: entities.TransactionCredit, Amount: decimal.RequireFromString("87.50")},
		},
	}

	svc := mocks.NewMockWalletService(t)
	svc.EXPECT().Earnings(mock.Anything, farmerID).Return(summary, nil).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth, tokens := newTestAuth(t)
	h := handler.NewWalletHandler(logger, svc, auth)

	r := chi.NewRouter()
	h.Init(r)

	req := httptest.NewRequest(http.MethodGet, "/wallet/earnings", nil)
	req.Header.Set("Authorization", bearer(t, tokens, farmerID, entities.RoleFarmer))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "120", resp["balance"])
	assert.Equal(t, "30", resp["pending_withdrawals"])
	assert.Len(t, resp["recent_earnings"], 1)
}
