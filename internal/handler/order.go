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

type CheckoutService interface {
	Checkout(ctx context.Context, consumerID uuid.UUID, shippingAddress string) ([]entities.Order, error)
}

type OrderService interface {
	Order(ctx context.Context, actor service.Actor, orderID uuid.UUID) (entities.Order, error)
	Orders(ctx context.Context, actor service.Actor, status entities.OrderStatus, limit, offset uint64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, actor service.Actor, orderID uuid.UUID, target entities.OrderStatus) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	checkout CheckoutService
	orders   OrderService
	auth     *middleware.Auth
}

func NewOrderHandler(logger *slog.Logger, checkout CheckoutService, orders OrderService, auth *middleware.Auth) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		checkout: checkout,
		orders:   orders,
		auth:     auth,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.auth.Authenticate)
		r.With(h.auth.Require(entities.RoleConsumer)).Post("/", h.Checkout)
		r.Get("/", h.List)
		r.Get("/{order_id}", h.Get)
		r.Patch("/{order_id}/status", h.UpdateStatus)
		r.With(h.auth.Require(entities.RoleConsumer)).Post("/{order_id}/cancel", h.Cancel)
	})
}

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
}

// Checkout converts the cart into orders, one per farmer.
// @Summary      Checkout
// @Description  Turns the consumer's cart into one order per farmer; the whole operation is atomic
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  checkoutRequest  true  "Shipping details"
// @Success      201  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse "Cart is empty"
// @Failure      409  {object}  utils.ErrorResponse "Product unavailable or out of stock"
// @Router       /orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req checkoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.checkout.Checkout(ctx, actor.ID, req.ShippingAddress)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	ordersCreated.Add(float64(len(orders)))
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusCreated)
}

// List returns the caller's orders.
// @Summary      List orders
// @Description  Consumers see their purchases, farmers their sales, admins everything
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by status"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Page offset"
// @Success      200  {array}  Order
// @Router       /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	status := entities.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		utils.WriteError(w, "invalid status", http.StatusBadRequest)
		return
	}
	limit, offset := pagination(r)

	orders, err := h.orders.Orders(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, status, limit, offset)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// Get returns one order with its items.
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.Order(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, orderID)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed out_for_delivery delivered cancelled"`
}

// UpdateStatus moves an order along its lifecycle.
// @Summary      Update order status
// @Description  Farmers advance their orders; delivery settles the farmer's wallet exactly once
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path  string               true  "Order id"
// @Param        request   body  updateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Invalid transition"
// @Router       /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target := entities.OrderStatus(req.Status)
	order, err := h.orders.UpdateStatus(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, orderID, target)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	if target == entities.OrderStatusDelivered {
		ordersSettled.Inc()
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Cancel is a consumer-facing shortcut for the cancelled transition.
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse "Order already terminal"
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, orderID, entities.OrderStatusCancelled)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
