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
	"github.com/shopspring/decimal"
)

var bulkOrderColumns = []string{
	"id", "consumer_id", "product_id", "farmer_id", "quantity", "target_price",
	"quoted_price", "status", "notes", "created_at", "updated_at",
}

func (r *postgresRepo) CreateBulkOrder(ctx context.Context, b entities.BulkOrder) (entities.BulkOrder, error) {
	query, args := r.qb.Insert("bulk_orders").
		Columns("consumer_id", "product_id", "farmer_id", "quantity", "target_price", "notes").
		Values(b.ConsumerID, b.ProductID, b.FarmerID, b.Quantity, b.TargetPrice, b.Notes).
		Suffix("RETURNING " + strings.Join(bulkOrderColumns, ", ")).
		MustSql()

	var created BulkOrder
	if err := r.getContext(ctx, &created, query, args...); err != nil {
		return entities.BulkOrder{}, fmt.Errorf("failed to create bulk order: %w", err)
	}
	return BulkOrderToEntity(created), nil
}

func (r *postgresRepo) GetBulkOrderByID(ctx context.Context, id uuid.UUID) (entities.BulkOrder, error) {
	query, args := r.qb.Select(bulkOrderColumns...).
		From("bulk_orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var b BulkOrder
	err := r.getContext(ctx, &b, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.BulkOrder{}, entities.ErrBulkOrderNotFound
	}
	if err != nil {
		return entities.BulkOrder{}, fmt.Errorf("failed to get bulk order: %w", err)
	}
	return BulkOrderToEntity(b), nil
}

func (r *postgresRepo) ListBulkOrders(ctx context.Context, consumerID, farmerID uuid.UUID) ([]entities.BulkOrder, error) {
	q := r.qb.Select(bulkOrderColumns...).
		From("bulk_orders").
		OrderBy("created_at DESC")

	if consumerID != uuid.Nil {
		q = q.Where(sq.Eq{"consumer_id": consumerID})
	}
	if farmerID != uuid.Nil {
		q = q.Where(sq.Eq{"farmer_id": farmerID})
	}

	query, args := q.MustSql()

	var rows []BulkOrder
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select bulk orders: %w", err)
	}

	result := make([]entities.BulkOrder, 0, len(rows))
	for _, b := range rows {
		result = append(result, BulkOrderToEntity(b))
	}
	return result, nil
}

// AnswerBulkOrder records the farmer's response. The status guard keeps a
// request from being answered twice.
func (r *postgresRepo) AnswerBulkOrder(ctx context.Context, id uuid.UUID, status entities.BulkOrderStatus, quotedPrice *decimal.Decimal) (entities.BulkOrder, error) {
	q := r.qb.Update("bulk_orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(entities.BulkOrderPending)}).
		Suffix("RETURNING " + strings.Join(bulkOrderColumns, ", "))

	if quotedPrice != nil {
		q = q.Set("quoted_price", *quotedPrice)
	}

	query, args := q.MustSql()

	var b BulkOrder
	err := r.getContext(ctx, &b, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.BulkOrder{}, entities.ErrBulkOrderClosed
	}
	if err != nil {
		return entities.BulkOrder{}, fmt.Errorf("failed to answer bulk order: %w", err)
	}
	return BulkOrderToEntity(b), nil
}
