package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutRepo interface {
	GetOrCreateCart(ctx context.Context, consumerID uuid.UUID) (entities.Cart, error)
	CartLines(ctx context.Context, cartID uuid.UUID) ([]entities.CartLine, error)
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	CreateOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type checkoutService struct {
	logger           *slog.Logger
	repo             CheckoutRepo
	txManager        trm.Manager
	notifier         Notifier
	deliveryLeadTime time.Duration
}

func NewCheckoutService(
	logger *slog.Logger,
	repo CheckoutRepo,
	txManager trm.Manager,
	notifier Notifier,
	deliveryLeadTime time.Duration,
) *checkoutService {
	return &checkoutService{
		logger:           logger.With(slog.String("service", "checkout")),
		repo:             repo,
		txManager:        txManager,
		notifier:         notifier,
		deliveryLeadTime: deliveryLeadTime,
	}
}

// Checkout turns the consumer's cart into one order per farmer. The whole
// operation is all-or-nothing: every line is validated against the live
// product state before any write, and orders, items, stock decrements and the
// cart wipe all happen in a single transaction. On success the cart is empty
// and every created order is returned.
func (s *checkoutService) Checkout(ctx context.Context, consumerID uuid.UUID, shippingAddress string) ([]entities.Order, error) {
	cart, err := s.repo.GetOrCreateCart(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	lines, err := s.repo.CartLines(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, entities.ErrEmptyCart
	}

	for _, line := range lines {
		if !line.IsActive {
			return nil, &entities.ProductUnavailableError{ProductID: line.ProductID, Name: line.ProductName}
		}
		if line.Stock < line.Quantity {
			return nil, &entities.InsufficientStockError{
				ProductID: line.ProductID,
				Name:      line.ProductName,
				Available: line.Stock,
			}
		}
	}

	groups := groupByFarmer(lines)

	now := time.Now().UTC()
	orders := make([]entities.Order, 0, len(groups))

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, group := range groups {
			total := decimalSum(group)

			order, err := s.repo.CreateOrder(ctx, entities.Order{
				OrderNumber:     generateOrderNumber(),
				ConsumerID:      consumerID,
				FarmerID:        group[0].FarmerID,
				Status:          entities.OrderStatusPending,
				TotalAmount:     total,
				ShippingAddress: shippingAddress,
				OrderDate:       now,
				DeliveryDate:    now.Add(s.deliveryLeadTime),
			})
			if err != nil {
				return err
			}

			items := make([]entities.OrderItem, 0, len(group))
			for _, line := range group {
				items = append(items, entities.OrderItem{
					OrderID:   order.ID,
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					UnitPrice: line.PriceAtTime,
					Subtotal:  line.Subtotal(),
				})
			}
			if err := s.repo.CreateOrderItems(ctx, order.ID, items); err != nil {
				return err
			}

			for _, line := range group {
				if err := s.repo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
					if errors.Is(err, entities.ErrInsufficientStock) {
						// The pre-transaction read of line.Stock is stale by
						// now, so report the product without a count.
						return fmt.Errorf("stock for %q changed during checkout: %w",
							line.ProductName, entities.ErrInsufficientStock)
					}
					return err
				}
			}

			order.Items = items
			orders = append(orders, order)
		}

		return s.repo.ClearCart(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		s.notifier.Notify(ctx, consumerID, "order_created", map[string]any{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"total_amount": order.TotalAmount.String(),
		})
		s.notifier.Notify(ctx, order.FarmerID, "order_received", map[string]any{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"total_amount": order.TotalAmount.String(),
		})
	}

	s.logger.Info("checkout completed",
		slog.String("consumer_id", consumerID.String()),
		slog.Int("orders", len(orders)),
	)
	return orders, nil
}

// groupByFarmer partitions cart lines per farmer, keeping farmers in the
// order their first item was added to the cart.
func groupByFarmer(lines []entities.CartLine) [][]entities.CartLine {
	index := make(map[uuid.UUID]int)
	var groups [][]entities.CartLine
	for _, line := range lines {
		i, ok := index[line.FarmerID]
		if !ok {
			i = len(groups)
			index[line.FarmerID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], line)
	}
	return groups
}

func decimalSum(lines []entities.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// generateOrderNumber builds a human-readable unique order number. The
// uniqueness is ultimately enforced by the database constraint; the uuid
// suffix makes collisions within the same second practically impossible.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%s",
		time.Now().UTC().Format("20060102150405"),
		strings.ToUpper(uuid.NewString()[:8]),
	)
}
