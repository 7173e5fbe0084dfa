package service

import (
	"context"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type AnalyticsRepo interface {
	CountUsers(ctx context.Context, role entities.Role) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context, status entities.OrderStatus) (int64, error)
	SumOrderTotals(ctx context.Context, status entities.OrderStatus) (decimal.Decimal, error)
}

// DashboardStats is the admin analytics snapshot. Revenue counts delivered
// orders only; platform earnings is the commission slice of that revenue.
type DashboardStats struct {
	TotalConsumers   int64
	TotalFarmers     int64
	TotalProducts    int64
	TotalOrders      int64
	DeliveredOrders  int64
	PendingOrders    int64
	TotalRevenue     decimal.Decimal
	PlatformEarnings decimal.Decimal
}

type analyticsService struct {
	logger         *slog.Logger
	repo           AnalyticsRepo
	commissionRate decimal.Decimal
}

func NewAnalyticsService(logger *slog.Logger, repo AnalyticsRepo, commissionRate float64) *analyticsService {
	return &analyticsService{
		logger:         logger.With(slog.String("service", "analytics")),
		repo:           repo,
		commissionRate: decimal.NewFromFloat(commissionRate),
	}
}

// Dashboard gathers the aggregates concurrently; they are independent reads.
func (s *analyticsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		stats.TotalConsumers, err = s.repo.CountUsers(ctx, entities.RoleConsumer)
		return err
	})
	eg.Go(func() (err error) {
		stats.TotalFarmers, err = s.repo.CountUsers(ctx, entities.RoleFarmer)
		return err
	})
	eg.Go(func() (err error) {
		stats.TotalProducts, err = s.repo.CountProducts(ctx)
		return err
	})
	eg.Go(func() (err error) {
		stats.TotalOrders, err = s.repo.CountOrders(ctx, "")
		return err
	})
	eg.Go(func() (err error) {
		stats.DeliveredOrders, err = s.repo.CountOrders(ctx, entities.OrderStatusDelivered)
		return err
	})
	eg.Go(func() (err error) {
		stats.PendingOrders, err = s.repo.CountOrders(ctx, entities.OrderStatusPending)
		return err
	})
	eg.Go(func() (err error) {
		stats.TotalRevenue, err = s.repo.SumOrderTotals(ctx, entities.OrderStatusDelivered)
		return err
	})
	if err := eg.Wait(); err != nil {
		return DashboardStats{}, err
	}

	stats.PlatformEarnings = stats.TotalRevenue.
		Mul(s.commissionRate).
		Div(decimal.NewFromInt(100)).
		Round(2)
	return stats, nil
}
