package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/agrilink/market-service/docs"
	"github.com/agrilink/market-service/internal/app"
	"github.com/agrilink/market-service/internal/config"
	"github.com/agrilink/market-service/internal/handler"
	"github.com/agrilink/market-service/internal/middleware"
	"github.com/agrilink/market-service/internal/notifier"
	"github.com/agrilink/market-service/internal/postgres"
	"github.com/agrilink/market-service/internal/redis"
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/internal/service"
	"github.com/agrilink/market-service/pkg/cache"
	"github.com/agrilink/market-service/pkg/token"
	"github.com/agrilink/market-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           AgriLink Market API
// @version         1.0
// @description     Farm-to-consumer marketplace HTTP API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(db))

	application := app.New(logger, conf)

	var productCache service.Cache
	switch conf.Cache.Driver {
	case "redis":
		redisCache, err := redis.NewCache(ctx, conf.Redis, conf.Cache.TTL)
		panicIfErr("failed to connect to redis", err)
		logger.Info("redis connected")
		productCache = redisCache
		application.SetClosers(redisCache)
	default:
		lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
		productCache = lru
		application.SetStarters(lru)
	}

	events := notifier.NewKafkaNotifier(logger, conf.Kafka)
	defer events.Close()

	tokens := token.NewManager(conf.Auth.JWTSecret, conf.Auth.TokenTTL)
	auth := middleware.NewAuth(tokens)

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	authService := service.NewAuthService(logger, store, tokens)
	productService := service.NewProductService(logger, store, productCache)
	cartService := service.NewCartService(logger, store)
	checkoutService := service.NewCheckoutService(logger, store, txManager, events, conf.Business.DeliveryLeadTime)
	orderService := service.NewOrderService(logger, store, txManager, events, conf.Business.CommissionRate)
	walletService := service.NewWalletService(logger, store, txManager, events, conf.Business.MinWithdrawal)
	reviewService := service.NewReviewService(logger, store, txManager, productCache)
	subscriptionService := service.NewSubscriptionService(logger, store, txManager)
	bulkOrderService := service.NewBulkOrderService(logger, store, events)
	analyticsService := service.NewAnalyticsService(logger, store, conf.Business.CommissionRate)

	application.SetHttpHandlers(
		handler.NewAuthHandler(logger, authService),
		handler.NewProductHandler(logger, productService, auth),
		handler.NewCartHandler(logger, cartService, auth),
		handler.NewOrderHandler(logger, checkoutService, orderService, auth),
		handler.NewWalletHandler(logger, walletService, auth),
		handler.NewReviewHandler(logger, reviewService, auth),
		handler.NewSubscriptionHandler(logger, subscriptionService, auth),
		handler.NewBulkOrderHandler(logger, bulkOrderService, auth),
		handler.NewAnalyticsHandler(logger, analyticsService, auth),
	)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
