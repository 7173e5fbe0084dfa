package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/middleware"
	"github.com/agrilink/market-service/internal/service"
	"github.com/agrilink/market-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartService interface {
	Cart(ctx context.Context, consumerID uuid.UUID) (service.CartView, error)
	AddItem(ctx context.Context, consumerID, productID uuid.UUID, qty int) (entities.CartItem, error)
	UpdateItem(ctx context.Context, consumerID, itemID uuid.UUID, qty int) (entities.CartItem, error)
	RemoveItem(ctx context.Context, consumerID, itemID uuid.UUID) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
	auth     *middleware.Auth
}

func NewCartHandler(logger *slog.Logger, svc CartService, auth *middleware.Auth) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(h.auth.Authenticate, h.auth.Require(entities.RoleConsumer))
		r.Get("/", h.Get)
		r.Post("/items", h.AddItem)
		r.Put("/items/{item_id}", h.UpdateItem)
		r.Delete("/items/{item_id}", h.RemoveItem)
	})
}

// Get returns the consumer's cart with totals.
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Router       /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	view, err := h.svc.Cart(ctx, actor.ID)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, CartViewToJSON(view), http.StatusOK)
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// AddItem puts a product into the cart, merging with an existing line.
// @Summary      Add cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  addItemRequest  true  "Item"
// @Success      201  {object}  CartItem
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Failure      409  {object}  utils.ErrorResponse "Product unavailable or out of stock"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req addItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.AddItem(ctx, actor.ID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, CartItemEntityToJSON(item), http.StatusCreated)
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateItem changes a line's quantity.
// @Summary      Update cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id  path  string             true  "Cart item id"
// @Param        request  body  updateItemRequest  true  "New quantity"
// @Success      200  {object}  CartItem
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/items/{item_id} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.svc.UpdateItem(ctx, actor.ID, itemID, req.Quantity)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, CartItemEntityToJSON(item), http.StatusOK)
}

// RemoveItem drops a line from the cart.
// @Summary      Remove cart item
// @Tags         cart
// @Security     BearerAuth
// @Param        item_id  path  string  true  "Cart item id"
// @Success      204  "No Content"
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveItem(ctx, actor.ID, itemID); err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
