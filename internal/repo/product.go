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
)

var productColumns = []string{
	"id", "farmer_id", "name", "description", "category", "unit", "price",
	"stock", "is_active", "is_organic", "rating", "total_reviews",
	"created_at", "updated_at",
}

// ProductFilter narrows product listings; zero values mean "no filter".
type ProductFilter struct {
	Category   string
	FarmerID   uuid.UUID
	OnlyActive bool
	Limit      uint64
	Offset     uint64
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns("farmer_id", "name", "description", "category", "unit",
			"price", "stock", "is_active", "is_organic").
		Values(p.FarmerID, p.Name, p.Description, p.Category, p.Unit,
			p.Price, p.Stock, p.IsActive, p.IsOrganic).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var product Product
	if err := r.getContext(ctx, &product, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("products").
		OrderBy("created_at DESC")

	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.FarmerID != uuid.Nil {
		q = q.Where(sq.Eq{"farmer_id": filter.FarmerID})
	}
	if filter.OnlyActive {
		q = q.Where(sq.Eq{"is_active": true})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args := q.MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("category", p.Category).
		Set("unit", p.Unit).
		Set("price", p.Price).
		Set("stock", p.Stock).
		Set("is_active", p.IsActive).
		Set("is_organic", p.IsOrganic).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

// DecrementStock atomically takes qty units off the shelf. The WHERE clause is
// the oversell guard: zero affected rows means the stock was already below qty.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *postgresRepo) RestoreStock(ctx context.Context, productID uuid.UUID, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}

// RefreshProductRating recomputes the denormalized rating aggregates from the
// reviews table.
func (r *postgresRepo) RefreshProductRating(ctx context.Context, productID uuid.UUID) error {
	query, args := r.qb.Update("products").
		Set("rating", sq.Expr("(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = products.id)")).
		Set("total_reviews", sq.Expr("(SELECT COUNT(*) FROM reviews WHERE product_id = products.id)")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to refresh product rating: %w", err)
	}
	return nil
}
