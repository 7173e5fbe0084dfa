package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var orderColumns = []string{
	"id", "order_number", "consumer_id", "farmer_id", "status", "total_amount",
	"shipping_address", "order_date", "delivery_date", "created_at", "updated_at",
}

// OrderFilter scopes order listings to one side of the marketplace.
type OrderFilter struct {
	ConsumerID uuid.UUID
	FarmerID   uuid.UUID
	Status     entities.OrderStatus
	Limit      uint64
	Offset     uint64
}

var ErrOrderNumberTaken = errors.New("order number already exists")

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("order_number", "consumer_id", "farmer_id", "status", "total_amount",
			"shipping_address", "order_date", "delivery_date").
		Values(o.OrderNumber, o.ConsumerID, o.FarmerID, string(o.Status), o.TotalAmount,
			o.ShippingAddress, o.OrderDate, o.DeliveryDate).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.Order{}, ErrOrderNumberTaken
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return OrderToEntity(order, nil), nil
}

func (r *postgresRepo) CreateOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price", "subtotal")
	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("id", "order_id", "product_id", "quantity", "unit_price", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if filter.ConsumerID != uuid.Nil {
		q = q.Where(sq.Eq{"consumer_id": filter.ConsumerID})
	}
	if filter.FarmerID != uuid.Nil {
		q = q.Where(sq.Eq{"farmer_id": filter.FarmerID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil))
	}
	return result, nil
}

// TransitionOrderStatus flips the order's status only when it is still in the
// expected previous state. The conditional WHERE is the guard against
// concurrent transitions (and double settlement in particular): the caller
// must treat a false return as "someone else got there first".
func (r *postgresRepo) TransitionOrderStatus(ctx context.Context, orderID uuid.UUID, from, to entities.OrderStatus) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
