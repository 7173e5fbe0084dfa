package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetOrCreateCart returns the consumer's cart, creating it on first access.
func (r *postgresRepo) GetOrCreateCart(ctx context.Context, consumerID uuid.UUID) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("consumer_id").
		Values(consumerID).
		Suffix("ON CONFLICT (consumer_id) DO UPDATE SET consumer_id = EXCLUDED.consumer_id").
		Suffix("RETURNING id, consumer_id, created_at, updated_at").
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get or create cart: %w", err)
	}
	return CartToEntity(cart), nil
}

// CartLines returns the cart's items joined with the current product state.
func (r *postgresRepo) CartLines(ctx context.Context, cartID uuid.UUID) ([]entities.CartLine, error) {
	query, args := r.qb.Select(
		"ci.id", "ci.cart_id", "ci.product_id", "ci.quantity", "ci.price_at_time", "ci.added_at",
		"p.name AS product_name", "p.farmer_id", "p.price AS current_price", "p.stock", "p.is_active",
	).
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id").
		Where(sq.Eq{"ci.cart_id": cartID}).
		OrderBy("ci.added_at").
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart lines: %w", err)
	}

	result := make([]entities.CartLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, CartLineToEntity(l))
	}
	return result, nil
}

// UpsertCartItem adds the product to the cart or bumps the quantity of the
// existing line. The captured price is kept from the first add.
func (r *postgresRepo) UpsertCartItem(ctx context.Context, cartID, productID uuid.UUID, qty int, price decimal.Decimal) (entities.CartItem, error) {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "product_id", "quantity", "price_at_time").
		Values(cartID, productID, qty, price).
		Suffix("ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		Suffix("RETURNING id, cart_id, product_id, quantity, price_at_time, added_at").
		MustSql()

	var item CartItem
	if err := r.getContext(ctx, &item, query, args...); err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

func (r *postgresRepo) UpdateCartItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, qty int) (entities.CartItem, error) {
	query, args := r.qb.Update("cart_items").
		Set("quantity", qty).
		Where(sq.Eq{"id": itemID, "cart_id": cartID}).
		Suffix("RETURNING id, cart_id, product_id, quantity, price_at_time, added_at").
		MustSql()

	var item CartItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to update cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

func (r *postgresRepo) DeleteCartItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"id": itemID, "cart_id": cartID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *postgresRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
