package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, filter repo.OrderFilter) ([]entities.Order, error)
	TransitionOrderStatus(ctx context.Context, orderID uuid.UUID, from, to entities.OrderStatus) (bool, error)
	RestoreStock(ctx context.Context, productID uuid.UUID, qty int) error
	GetOrCreateWallet(ctx context.Context, farmerID uuid.UUID) (entities.Wallet, error)
	CreditWallet(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error
	CreateWalletTransaction(ctx context.Context, t entities.WalletTransaction) (entities.WalletTransaction, error)
}

type orderService struct {
	logger         *slog.Logger
	repo           OrderRepo
	txManager      trm.Manager
	notifier       Notifier
	commissionRate decimal.Decimal
}

func NewOrderService(
	logger *slog.Logger,
	repo OrderRepo,
	txManager trm.Manager,
	notifier Notifier,
	commissionRate float64,
) *orderService {
	return &orderService{
		logger:         logger.With(slog.String("service", "order")),
		repo:           repo,
		txManager:      txManager,
		notifier:       notifier,
		commissionRate: decimal.NewFromFloat(commissionRate),
	}
}

// Order returns one order, visible only to its consumer, its farmer or an admin.
func (s *orderService) Order(ctx context.Context, actor Actor, orderID uuid.UUID) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !s.canView(actor, order) {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

// Orders lists the actor's side of the marketplace: consumers see their
// purchases, farmers their sales, admins everything.
func (s *orderService) Orders(ctx context.Context, actor Actor, status entities.OrderStatus, limit, offset uint64) ([]entities.Order, error) {
	filter := repo.OrderFilter{Status: status, Limit: limit, Offset: offset}
	switch actor.Role {
	case entities.RoleConsumer:
		filter.ConsumerID = actor.ID
	case entities.RoleFarmer:
		filter.FarmerID = actor.ID
	case entities.RoleAdmin:
	default:
		return nil, entities.ErrForbidden
	}
	return s.repo.ListOrders(ctx, filter)
}

// UpdateStatus moves the order along its lifecycle. Farmers (and admins)
// advance the order; consumers may only cancel their own. Reaching delivered
// settles the farmer's earnings exactly once, and cancellation puts the
// reserved stock back on the shelf. Settlement and the status flip share one
// transaction, keyed on the conditional transition so a concurrent caller
// cannot settle the same order twice.
func (s *orderService) UpdateStatus(ctx context.Context, actor Actor, orderID uuid.UUID, target entities.OrderStatus) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, entities.ErrInvalidTransition
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.checkTransitionPermission(actor, order, target); err != nil {
		return entities.Order{}, err
	}
	if !order.Status.CanTransitionTo(target) {
		return entities.Order{}, entities.ErrInvalidTransition
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		moved, err := s.repo.TransitionOrderStatus(ctx, orderID, order.Status, target)
		if err != nil {
			return err
		}
		if !moved {
			return entities.ErrInvalidTransition
		}

		switch target {
		case entities.OrderStatusDelivered:
			return s.settle(ctx, order)
		case entities.OrderStatusCancelled:
			return s.restoreStock(ctx, order)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	order.Status = target
	s.notifier.Notify(ctx, order.ConsumerID, "order_status_changed", map[string]any{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"status":       string(target),
	})

	s.logger.Info("order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", string(target)),
	)
	return order, nil
}

// settle credits the farmer's wallet with the order total minus the platform
// commission and records the matching ledger entry.
func (s *orderService) settle(ctx context.Context, order entities.Order) error {
	commission := order.TotalAmount.Mul(s.commissionRate).Div(decimal.NewFromInt(100)).Round(2)
	earnings := order.TotalAmount.Sub(commission)

	wallet, err := s.repo.GetOrCreateWallet(ctx, order.FarmerID)
	if err != nil {
		return err
	}
	if err := s.repo.CreditWallet(ctx, wallet.ID, earnings); err != nil {
		return err
	}

	orderID := order.ID
	_, err = s.repo.CreateWalletTransaction(ctx, entities.WalletTransaction{
		WalletID:    wallet.ID,
		Type:        entities.TransactionCredit,
		Status:      entities.TransactionCompleted,
		Amount:      earnings,
		Description: fmt.Sprintf("Earnings for order %s", order.OrderNumber),
		OrderID:     &orderID,
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx, order.FarmerID, "earnings_credited", map[string]any{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"amount":       earnings.String(),
	})
	return nil
}

func (s *orderService) restoreStock(ctx context.Context, order entities.Order) error {
	for _, item := range order.Items {
		if err := s.repo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) canView(actor Actor, order entities.Order) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.ID == order.ConsumerID || actor.ID == order.FarmerID
}

func (s *orderService) checkTransitionPermission(actor Actor, order entities.Order, target entities.OrderStatus) error {
	if actor.IsAdmin() {
		return nil
	}

	switch actor.Role {
	case entities.RoleFarmer:
		if actor.ID != order.FarmerID {
			return entities.ErrForbidden
		}
		return nil
	case entities.RoleConsumer:
		// Consumers may only cancel, and only their own orders.
		if actor.ID != order.ConsumerID || target != entities.OrderStatusCancelled {
			return entities.ErrForbidden
		}
		return nil
	}
	return entities.ErrForbidden
}
