package repo

import (
	"context"
	"fmt"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

func (r *postgresRepo) CountUsers(ctx context.Context, role entities.Role) (int64, error) {
	q := r.qb.Select("COUNT(*)").From("users")
	if role != "" {
		q = q.Where(sq.Eq{"role": string(role)})
	}
	query, args := q.MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) CountProducts(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("products").MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context, status entities.OrderStatus) (int64, error) {
	q := r.qb.Select("COUNT(*)").From("orders")
	if status != "" {
		q = q.Where(sq.Eq{"status": string(status)})
	}
	query, args := q.MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// SumOrderTotals adds up order totals for the given status (all orders when
// status is empty).
func (r *postgresRepo) SumOrderTotals(ctx context.Context, status entities.OrderStatus) (decimal.Decimal, error) {
	q := r.qb.Select("COALESCE(SUM(total_amount), 0)").From("orders")
	if status != "" {
		q = q.Where(sq.Eq{"status": string(status)})
	}
	query, args := q.MustSql()

	var sum decimal.Decimal
	if err := r.getContext(ctx, &sum, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return sum, nil
}
