package service

import (
	"context"
	"log/slog"

	"github.com/agrilink/market-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartRepo interface {
	GetOrCreateCart(ctx context.Context, consumerID uuid.UUID) (entities.Cart, error)
	CartLines(ctx context.Context, cartID uuid.UUID) ([]entities.CartLine, error)
	UpsertCartItem(ctx context.Context, cartID, productID uuid.UUID, qty int, price decimal.Decimal) (entities.CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, qty int) (entities.CartItem, error)
	DeleteCartItem(ctx context.Context, cartID, itemID uuid.UUID) error
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

// CartView is the cart with its lines and computed totals.
type CartView struct {
	Cart       entities.Cart
	Lines      []entities.CartLine
	TotalItems int
	TotalPrice decimal.Decimal
}

type cartService struct {
	logger *slog.Logger
	repo   CartRepo
}

func NewCartService(logger *slog.Logger, repo CartRepo) *cartService {
	return &cartService{
		logger: logger.With(slog.String("service", "cart")),
		repo:   repo,
	}
}

func (s *cartService) Cart(ctx context.Context, consumerID uuid.UUID) (CartView, error) {
	cart, err := s.repo.GetOrCreateCart(ctx, consumerID)
	if err != nil {
		return CartView{}, err
	}

	lines, err := s.repo.CartLines(ctx, cart.ID)
	if err != nil {
		return CartView{}, err
	}

	view := CartView{Cart: cart, Lines: lines, TotalPrice: decimal.Zero}
	for _, line := range lines {
		view.TotalItems += line.Quantity
		view.TotalPrice = view.TotalPrice.Add(line.Subtotal())
	}
	return view, nil
}

// AddItem puts the product into the cart at its current price, merging with an
// existing line. Checkout re-validates quantities against live stock, so the
// check here is a fast-fail courtesy, not the guard.
func (s *cartService) AddItem(ctx context.Context, consumerID, productID uuid.UUID, qty int) (entities.CartItem, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return entities.CartItem{}, err
	}
	if !product.IsActive {
		return entities.CartItem{}, &entities.ProductUnavailableError{ProductID: product.ID, Name: product.Name}
	}
	if product.Stock < qty {
		return entities.CartItem{}, &entities.InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Available: product.Stock,
		}
	}

	cart, err := s.repo.GetOrCreateCart(ctx, consumerID)
	if err != nil {
		return entities.CartItem{}, err
	}
	return s.repo.UpsertCartItem(ctx, cart.ID, productID, qty, product.Price)
}

func (s *cartService) UpdateItem(ctx context.Context, consumerID, itemID uuid.UUID, qty int) (entities.CartItem, error) {
	cart, err := s.repo.GetOrCreateCart(ctx, consumerID)
	if err != nil {
		return entities.CartItem{}, err
	}
	return s.repo.UpdateCartItemQuantity(ctx, cart.ID, itemID, qty)
}

func (s *cartService) RemoveItem(ctx context.Context, consumerID, itemID uuid.UUID) error {
	cart, err := s.repo.GetOrCreateCart(ctx, consumerID)
	if err != nil {
		return err
	}
	return s.repo.DeleteCartItem(ctx, cart.ID, itemID)
}
