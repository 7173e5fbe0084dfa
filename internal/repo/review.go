package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrilink/market-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrDuplicateReview = errors.New("product already reviewed by this consumer")

func (r *postgresRepo) CreateReview(ctx context.Context, review entities.Review) (entities.Review, error) {
	query, args := r.qb.Insert("reviews").
		Columns("product_id", "consumer_id", "rating", "comment").
		Values(review.ProductID, review.ConsumerID, review.Rating, review.Comment).
		Suffix("RETURNING id, product_id, consumer_id, rating, comment, created_at").
		MustSql()

	var created Review
	err := r.getContext(ctx, &created, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.Review{}, ErrDuplicateReview
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to create review: %w", err)
	}
	return ReviewToEntity(created), nil
}

func (r *postgresRepo) ListReviewsByProduct(ctx context.Context, productID uuid.UUID, limit, offset uint64) ([]entities.Review, error) {
	q := r.qb.Select("id", "product_id", "consumer_id", "rating", "comment", "created_at").
		From("reviews").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	query, args := q.MustSql()

	var reviews []Review
	if err := r.selectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}

	result := make([]entities.Review, 0, len(reviews))
	for _, rev := range reviews {
		result = append(result, ReviewToEntity(rev))
	}
	return result, nil
}
