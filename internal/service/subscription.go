package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionRepo interface {
	CreateSubscription(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	CreateSubscriptionItems(ctx context.Context, subscriptionID uuid.UUID, items []entities.SubscriptionItem) error
	GetSubscriptionByID(ctx context.Context, id uuid.UUID) (entities.Subscription, error)
	ListSubscriptionsByConsumer(ctx context.Context, consumerID uuid.UUID) ([]entities.Subscription, error)
	UpdateSubscription(ctx context.Context, id uuid.UUID, patch repo.SubscriptionPatch) (entities.Subscription, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

// SubscriptionItemInput is one product line of a new subscription box.
type SubscriptionItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type subscriptionService struct {
	logger    *slog.Logger
	repo      SubscriptionRepo
	txManager trm.Manager
}

func NewSubscriptionService(logger *slog.Logger, repo SubscriptionRepo, txManager trm.Manager) *subscriptionService {
	return &subscriptionService{
		logger:    logger.With(slog.String("service", "subscription")),
		repo:      repo,
		txManager: txManager,
	}
}

// Create sets up a recurring box. Item prices are captured from the products
// at creation time; the first delivery is one period out.
func (s *subscriptionService) Create(ctx context.Context, consumerID uuid.UUID, frequency entities.SubscriptionFrequency, address string, inputs []SubscriptionItemInput) (entities.Subscription, error) {
	items := make([]entities.SubscriptionItem, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		product, err := s.repo.GetProductByID(ctx, in.ProductID)
		if err != nil {
			return entities.Subscription{}, err
		}
		if !product.IsActive {
			return entities.Subscription{}, &entities.ProductUnavailableError{ProductID: product.ID, Name: product.Name}
		}
		items = append(items, entities.SubscriptionItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	var sub entities.Subscription
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.repo.CreateSubscription(ctx, entities.Subscription{
			ConsumerID:       consumerID,
			Frequency:        frequency,
			TotalPrice:       total,
			NextDeliveryDate: frequency.NextDelivery(time.Now().UTC()),
			DeliveryAddress:  address,
		})
		if err != nil {
			return err
		}
		return s.repo.CreateSubscriptionItems(ctx, sub.ID, items)
	})
	if err != nil {
		return entities.Subscription{}, err
	}

	sub.Items = items
	s.logger.Info("subscription created",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("consumer_id", consumerID.String()),
	)
	return sub, nil
}

func (s *subscriptionService) Subscription(ctx context.Context, actor Actor, id uuid.UUID) (entities.Subscription, error) {
	sub, err := s.repo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if !actor.IsAdmin() && actor.ID != sub.ConsumerID {
		return entities.Subscription{}, entities.ErrForbidden
	}
	return sub, nil
}

func (s *subscriptionService) ByConsumer(ctx context.Context, consumerID uuid.UUID) ([]entities.Subscription, error) {
	return s.repo.ListSubscriptionsByConsumer(ctx, consumerID)
}

// ChangeFrequency reschedules the box; the next delivery is recomputed from now.
func (s *subscriptionService) ChangeFrequency(ctx context.Context, actor Actor, id uuid.UUID, frequency entities.SubscriptionFrequency) (entities.Subscription, error) {
	if _, err := s.Subscription(ctx, actor, id); err != nil {
		return entities.Subscription{}, err
	}
	next := frequency.NextDelivery(time.Now().UTC())
	return s.repo.UpdateSubscription(ctx, id, repo.SubscriptionPatch{
		Frequency:        &frequency,
		NextDeliveryDate: &next,
	})
}

func (s *subscriptionService) Pause(ctx context.Context, actor Actor, id uuid.UUID) (entities.Subscription, error) {
	return s.setPaused(ctx, actor, id, true)
}

func (s *subscriptionService) Resume(ctx context.Context, actor Actor, id uuid.UUID) (entities.Subscription, error) {
	return s.setPaused(ctx, actor, id, false)
}

func (s *subscriptionService) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (entities.Subscription, error) {
	if _, err := s.Subscription(ctx, actor, id); err != nil {
		return entities.Subscription{}, err
	}
	inactive := false
	return s.repo.UpdateSubscription(ctx, id, repo.SubscriptionPatch{IsActive: &inactive})
}

func (s *subscriptionService) setPaused(ctx context.Context, actor Actor, id uuid.UUID, paused bool) (entities.Subscription, error) {
	if _, err := s.Subscription(ctx, actor, id); err != nil {
		return entities.Subscription{}, err
	}
	return s.repo.UpdateSubscription(ctx, id, repo.SubscriptionPatch{IsPaused: &paused})
}
