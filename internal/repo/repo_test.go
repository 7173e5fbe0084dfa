package repo_test

import (
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/internal/service"
)

// The single concrete repo backs every per-service interface; main wires
// the same instance into all of them, so each one must be satisfied.
var (
	_ service.AuthRepo         = repo.NewPostgresRepo(nil)
	_ service.ProductRepo      = repo.NewPostgresRepo(nil)
	_ service.CartRepo         = repo.NewPostgresRepo(nil)
	_ service.CheckoutRepo     = repo.NewPostgresRepo(nil)
	_ service.OrderRepo        = repo.NewPostgresRepo(nil)
	_ service.WalletRepo       = repo.NewPostgresRepo(nil)
	_ service.ReviewRepo       = repo.NewPostgresRepo(nil)
	_ service.SubscriptionRepo = repo.NewPostgresRepo(nil)
	_ service.BulkOrderRepo    = repo.NewPostgresRepo(nil)
	_ service.AnalyticsRepo    = repo.NewPostgresRepo(nil)
)
