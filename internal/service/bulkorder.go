package service

import (
	"context"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BulkOrderRepo interface {
	CreateBulkOrder(ctx context.Context, b entities.BulkOrder) (entities.BulkOrder, error)
	GetBulkOrderByID(ctx context.Context, id uuid.UUID) (entities.BulkOrder, error)
	ListBulkOrders(ctx context.Context, consumerID, farmerID uuid.UUID) ([]entities.BulkOrder, error)
	AnswerBulkOrder(ctx context.Context, id uuid.UUID, status entities.BulkOrderStatus, quotedPrice *decimal.Decimal) (entities.BulkOrder, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

type bulkOrderService struct {
	logger   *slog.Logger
	repo     BulkOrderRepo
	notifier Notifier
}

func NewBulkOrderService(logger *slog.Logger, repo BulkOrderRepo, notifier Notifier) *bulkOrderService {
	return &bulkOrderService{
		logger:   logger.With(slog.String("service", "bulk_order")),
		repo:     repo,
		notifier: notifier,
	}
}

// Request files a quote request with the product's farmer.
func (s *bulkOrderService) Request(ctx context.Context, consumerID, productID uuid.UUID, quantity int, targetPrice decimal.Decimal, notes string) (entities.BulkOrder, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return entities.BulkOrder{}, err
	}
	if !product.IsActive {
		return entities.BulkOrder{}, &entities.ProductUnavailableError{ProductID: product.ID, Name: product.Name}
	}

	created, err := s.repo.CreateBulkOrder(ctx, entities.BulkOrder{
		ConsumerID:  consumerID,
		ProductID:   productID,
		FarmerID:    product.FarmerID,
		Quantity:    quantity,
		TargetPrice: targetPrice,
		Notes:       notes,
	})
	if err != nil {
		return entities.BulkOrder{}, err
	}

	s.notifier.Notify(ctx, product.FarmerID, "bulk_order_requested", map[string]any{
		"bulk_order_id": created.ID.String(),
		"product_id":    productID.String(),
		"quantity":      quantity,
	})
	return created, nil
}

// List shows the actor's side of the negotiation: consumers their requests,
// farmers the requests addressed to them, admins everything.
func (s *bulkOrderService) List(ctx context.Context, actor Actor) ([]entities.BulkOrder, error) {
	switch actor.Role {
	case entities.RoleConsumer:
		return s.repo.ListBulkOrders(ctx, actor.ID, uuid.Nil)
	case entities.RoleFarmer:
		return s.repo.ListBulkOrders(ctx, uuid.Nil, actor.ID)
	case entities.RoleAdmin:
		return s.repo.ListBulkOrders(ctx, uuid.Nil, uuid.Nil)
	}
	return nil, entities.ErrForbidden
}

// Respond records the farmer's answer: a quoted price or a rejection. A
// request can only be answered once.
func (s *bulkOrderService) Respond(ctx context.Context, actor Actor, id uuid.UUID, accept bool, quotedPrice decimal.Decimal) (entities.BulkOrder, error) {
	b, err := s.repo.GetBulkOrderByID(ctx, id)
	if err != nil {
		return entities.BulkOrder{}, err
	}
	if !actor.IsAdmin() && actor.ID != b.FarmerID {
		return entities.BulkOrder{}, entities.ErrForbidden
	}

	status := entities.BulkOrderRejected
	var price *decimal.Decimal
	if accept {
		status = entities.BulkOrderQuoted
		price = &quotedPrice
	}

	answered, err := s.repo.AnswerBulkOrder(ctx, id, status, price)
	if err != nil {
		return entities.BulkOrder{}, err
	}

	s.notifier.Notify(ctx, b.ConsumerID, "bulk_order_answered", map[string]any{
		"bulk_order_id": id.String(),
		"status":        string(status),
	})
	return answered, nil
}
