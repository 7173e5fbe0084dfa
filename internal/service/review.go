package service

import (
	"context"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/pkg/trm"

	"github.com/google/uuid"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review entities.Review) (entities.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID, limit, offset uint64) ([]entities.Review, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
	RefreshProductRating(ctx context.Context, productID uuid.UUID) error
}

type reviewService struct {
	logger    *slog.Logger
	repo      ReviewRepo
	txManager trm.Manager
	cache     Cache
}

func NewReviewService(logger *slog.Logger, repo ReviewRepo, txManager trm.Manager, cache Cache) *reviewService {
	return &reviewService{
		logger:    logger.With(slog.String("service", "review")),
		repo:      repo,
		txManager: txManager,
		cache:     cache,
	}
}

// Create stores the review and refreshes the product's denormalized rating in
// the same transaction. One review per consumer per product.
func (s *reviewService) Create(ctx context.Context, consumerID, productID uuid.UUID, rating int, comment string) (entities.Review, error) {
	if _, err := s.repo.GetProductByID(ctx, productID); err != nil {
		return entities.Review{}, err
	}

	var review entities.Review
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		review, err = s.repo.CreateReview(ctx, entities.Review{
			ProductID:  productID,
			ConsumerID: consumerID,
			Rating:     rating,
			Comment:    comment,
		})
		if err != nil {
			return err
		}
		return s.repo.RefreshProductRating(ctx, productID)
	})
	if err != nil {
		return entities.Review{}, err
	}

	s.cache.Del(ctx, productCacheKey(productID))
	return review, nil
}

func (s *reviewService) ByProduct(ctx context.Context, productID uuid.UUID, limit, offset uint64) ([]entities.Review, error) {
	return s.repo.ListReviewsByProduct(ctx, productID, limit, offset)
}
