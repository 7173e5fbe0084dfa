package service

import (
	"context"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/pkg/utils"

	"github.com/google/uuid"
)

type ProductRepo interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
	ListProducts(ctx context.Context, filter repo.ProductFilter) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
}

func NewProductService(logger *slog.Logger, repo ProductRepo, cache Cache) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *productService) Product(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	if data, ok := s.cache.Get(ctx, productCacheKey(id)); ok {
		var product entities.Product
		if err := product.Unmarshal(data); err == nil {
			return product, nil
		}
		s.cache.Del(ctx, productCacheKey(id))
	}

	var product entities.Product
	err := utils.Retry(ctx, readRetry, func() error {
		var err error
		product, err = s.repo.GetProductByID(ctx, id)
		return err
	}, entities.ErrProductNotFound)
	if err != nil {
		return entities.Product{}, err
	}

	if data, err := product.Marshal(); err == nil {
		s.cache.Set(ctx, productCacheKey(id), data)
	}
	return product, nil
}

func (s *productService) Products(ctx context.Context, filter repo.ProductFilter) ([]entities.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *productService) Create(ctx context.Context, actor Actor, p entities.Product) (entities.Product, error) {
	p.FarmerID = actor.ID
	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product created",
		slog.String("product_id", created.ID.String()),
		slog.String("farmer_id", actor.ID.String()),
	)
	return created, nil
}

// Update replaces the product's editable fields. Only the owning farmer or an
// admin may touch a product.
func (s *productService) Update(ctx context.Context, actor Actor, p entities.Product) (entities.Product, error) {
	existing, err := s.repo.GetProductByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if !actor.IsAdmin() && actor.ID != existing.FarmerID {
		return entities.Product{}, entities.ErrForbidden
	}

	updated, err := s.repo.UpdateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}

	s.cache.Del(ctx, productCacheKey(p.ID))
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	existing, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && actor.ID != existing.FarmerID {
		return entities.ErrForbidden
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Del(ctx, productCacheKey(id))
	return nil
}
