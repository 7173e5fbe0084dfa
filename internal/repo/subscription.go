package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var subscriptionColumns = []string{
	"id", "consumer_id", "frequency", "total_price", "next_delivery_date",
	"is_active", "is_paused", "delivery_address", "created_at", "updated_at",
}

func (r *postgresRepo) CreateSubscription(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	query, args := r.qb.Insert("subscriptions").
		Columns("consumer_id", "frequency", "total_price", "next_delivery_date", "delivery_address").
		Values(s.ConsumerID, string(s.Frequency), s.TotalPrice, s.NextDeliveryDate, s.DeliveryAddress).
		Suffix("RETURNING " + strings.Join(subscriptionColumns, ", ")).
		MustSql()

	var sub Subscription
	if err := r.getContext(ctx, &sub, query, args...); err != nil {
		return entities.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}
	return SubscriptionToEntity(sub, nil), nil
}

func (r *postgresRepo) CreateSubscriptionItems(ctx context.Context, subscriptionID uuid.UUID, items []entities.SubscriptionItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("subscription_items").
		Columns("subscription_id", "product_id", "quantity", "price")
	for _, it := range items {
		q = q.Values(subscriptionID, it.ProductID, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create subscription items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetSubscriptionByID(ctx context.Context, id uuid.UUID) (entities.Subscription, error) {
	query, args := r.qb.Select(subscriptionColumns...).
		From("subscriptions").
		Where(sq.Eq{"id": id}).
		MustSql()

	var sub Subscription
	err := r.getContext(ctx, &sub, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Subscription{}, entities.ErrSubscriptionNotFound
	}
	if err != nil {
		return entities.Subscription{}, fmt.Errorf("failed to get subscription: %w", err)
	}

	query, args = r.qb.Select("id", "subscription_id", "product_id", "quantity", "price").
		From("subscription_items").
		Where(sq.Eq{"subscription_id": id}).
		MustSql()

	var items []SubscriptionItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Subscription{}, fmt.Errorf("failed to get subscription items: %w", err)
	}

	return SubscriptionToEntity(sub, items), nil
}

func (r *postgresRepo) ListSubscriptionsByConsumer(ctx context.Context, consumerID uuid.UUID) ([]entities.Subscription, error) {
	query, args := r.qb.Select(subscriptionColumns...).
		From("subscriptions").
		Where(sq.Eq{"consumer_id": consumerID}).
		OrderBy("created_at DESC").
		MustSql()

	var subs []Subscription
	if err := r.selectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select subscriptions: %w", err)
	}

	result := make([]entities.Subscription, 0, len(subs))
	for _, s := range subs {
		result = append(result, SubscriptionToEntity(s, nil))
	}
	return result, nil
}

// SubscriptionPatch carries the mutable subscription fields; nil means keep.
type SubscriptionPatch struct {
	Frequency        *entities.SubscriptionFrequency
	NextDeliveryDate *time.Time
	IsActive         *bool
	IsPaused         *bool
	DeliveryAddress  *string
}

func (r *postgresRepo) UpdateSubscription(ctx context.Context, id uuid.UUID, patch SubscriptionPatch) (entities.Subscription, error) {
	q := r.qb.Update("subscriptions").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(subscriptionColumns, ", "))

	if patch.Frequency != nil {
		q = q.Set("frequency", string(*patch.Frequency))
	}
	if patch.NextDeliveryDate != nil {
		q = q.Set("next_delivery_date", *patch.NextDeliveryDate)
	}
	if patch.IsActive != nil {
		q = q.Set("is_active", *patch.IsActive)
	}
	if patch.IsPaused != nil {
		q = q.Set("is_paused", *patch.IsPaused)
	}
	if patch.DeliveryAddress != nil {
		q = q.Set("delivery_address", *patch.DeliveryAddress)
	}

	query, args := q.MustSql()

	var sub Subscription
	err := r.getContext(ctx, &sub, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Subscription{}, entities.ErrSubscriptionNotFound
	}
	if err != nil {
		return entities.Subscription{}, fmt.Errorf("failed to update subscription: %w", err)
	}
	return SubscriptionToEntity(sub, nil), nil
}
