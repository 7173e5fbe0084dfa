package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/service"
	mocks "github.com/agrilink/market-service/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Product(t *testing.T) {
	productID := uuid.New()
	validProduct := entities.Product{ID: productID, Name: "Tomatoes", Stock: 5, IsActive: true}
	validData, err := validProduct.Marshal()
	require.NoError(t, err)
	cacheKey := "product:" + productID.String()

	type MockBehavior func(repo *mocks.MockProductRepo, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "success from cache",
			mockBehavior: func(_ *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(mock.Anything, cacheKey).Return(validData, true).Once()
			},
		},
		{
			name: "broken cache entry falls back to repo",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(mock.Anything, cacheKey).Return([]byte("broken"), true).Once()
				cache.EXPECT().Del(mock.Anything, cacheKey).Once()
				repo.EXPECT().GetProductByID(mock.Anything, productID).Return(validProduct, nil).Once()
				cache.EXPECT().Set(mock.Anything, cacheKey, validData).Once()
			},
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(mock.Anything, cacheKey).Return(nil, false).Once()
				repo.EXPECT().GetProductByID(mock.Anything, productID).Return(validProduct, nil).Once()
				cache.EXPECT().Set(mock.Anything, cacheKey, validData).Once()
			},
		},
		{
			name: "not found is not retried",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(mock.Anything, cacheKey).Return(nil, false).Once()
				repo.EXPECT().GetProductByID(mock.Anything, productID).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "transient failure is retried",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(mock.Anything, cacheKey).Return(nil, false).Once()
				repo.EXPECT().GetProductByID(mock.Anything, productID).
					Return(entities.Product{}, errors.New("connection reset")).Once()
				repo.EXPECT().GetProductByID(mock.Anything, productID).
					Return(validProduct, nil).Once()
				cache.EXPECT().Set(mock.Anything, cacheKey, validData).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := service.NewProductService(logger, repo, cache)

			got, err := svc.Product(context.Background(), productID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, validProduct.ID, got.ID)
			assert.Equal(t, validProduct.Name, got.Name)
		})
	}
}

func TestProductService_Ownership(t *testing.T) {
	productID := uuid.New()
	ownerID := uuid.New()
	existing := entities.Product{ID: productID, FarmerID: ownerID, Name: "Eggs"}

	t.Run("owner updates", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().GetProductByID(mock.Anything, productID).Return(existing, nil).Once()
		repo.EXPECT().UpdateProduct(mock.Anything, mock.Anything).Return(existing, nil).Once()
		cache.EXPECT().Del(mock.Anything, "product:"+productID.String()).Once()

		svc := service.NewProductService(logger, repo, cache)

		_, err := svc.Update(context.Background(),
			service.Actor{ID: ownerID, Role: entities.RoleFarmer}, existing)
		assert.NoError(t, err)
	})

	t.Run("another farmer is rejected", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().GetProductByID(mock.Anything, productID).Return(existing, nil).Once()

		svc := service.NewProductService(logger, repo, cache)

		_, err := svc.Update(context.Background(),
			service.Actor{ID: uuid.New(), Role: entities.RoleFarmer}, existing)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("admin deletes any product", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().GetProductByID(mock.Anything, productID).Return(existing, nil).Once()
		repo.EXPECT().DeleteProduct(mock.Anything, productID).Return(nil).Once()
		cache.EXPECT().Del(mock.Anything, "product:"+productID.String()).Once()

		svc := service.NewProductService(logger, repo, cache)

		err := svc.Delete(context.Background(),
			service.Actor{ID: uuid.New(), Role: entities.RoleAdmin}, productID)
		assert.NoError(t, err)
	})
}
