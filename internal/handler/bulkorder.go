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
	"github.com/shopspring/decimal"
)

type BulkOrderService interface {
	Request(ctx context.Context, consumerID, productID uuid.UUID, quantity int, targetPrice decimal.Decimal, notes string) (entities.BulkOrder, error)
	List(ctx context.Context, actor service.Actor) ([]entities.BulkOrder, error)
	Respond(ctx context.Context, actor service.Actor, id uuid.UUID, accept bool, quotedPrice decimal.Decimal) (entities.BulkOrder, error)
}

type BulkOrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      BulkOrderService
	auth     *middleware.Auth
}

func NewBulkOrderHandler(logger *slog.Logger, svc BulkOrderService, auth *middleware.Auth) *BulkOrderHandler {
	return &BulkOrderHandler{
		logger:   logger.With(slog.String("handler", "bulk_order")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *BulkOrderHandler) Init(r chi.Router) {
	r.Route("/bulk-orders", func(r chi.Router) {
		r.Use(h.auth.Authenticate)
		r.With(h.auth.Require(entities.RoleConsumer)).Post("/", h.Request)
		r.Get("/", h.List)
		r.With(h.auth.Require(entities.RoleFarmer, entities.RoleAdmin)).
			Post("/{bulk_order_id}/respond", h.Respond)
	})
}

type bulkOrderRequest struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	TargetPrice string    `json:"target_price" validate:"required"`
	Notes       string    `json:"notes" validate:"max=2000"`
}

// Request files a wholesale quote request with the product's farmer.
// @Summary      Request a bulk order quote
// @Tags         bulk-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  bulkOrderRequest  true  "Quote request"
// @Success      201  {object}  BulkOrder
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Router       /bulk-orders [post]
func (h *BulkOrderHandler) Request(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req bulkOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target, err := decimal.NewFromString(req.TargetPrice)
	if err != nil || !target.IsPositive() {
		utils.WriteError(w, "invalid target_price", http.StatusBadRequest)
		return
	}

	created, err := h.svc.Request(ctx, actor.ID, req.ProductID, req.Quantity, target, req.Notes)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, BulkOrderEntityToJSON(created), http.StatusCreated)
}

// List returns the caller's side of open quote requests.
// @Summary      List bulk orders
// @Tags         bulk-orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  BulkOrder
// @Router       /bulk-orders [get]
func (h *BulkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	orders, err := h.svc.List(ctx, service.Actor{ID: actor.ID, Role: actor.Role})
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	result := make([]BulkOrder, 0, len(orders))
	for _, b := range orders {
		result = append(result, BulkOrderEntityToJSON(b))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

type respondRequest struct {
	Accept      bool   `json:"accept"`
	QuotedPrice string `json:"quoted_price" validate:"required_if=Accept true"`
}

// Respond answers a quote request with a price or a rejection.
// @Summary      Respond to a bulk order
// @Tags         bulk-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bulk_order_id  path  string          true  "Bulk order id"
// @Param        request        body  respondRequest  true  "Response"
// @Success      200  {object}  BulkOrder
// @Failure      409  {object}  utils.ErrorResponse "Already answered"
// @Router       /bulk-orders/{bulk_order_id}/respond [post]
func (h *BulkOrderHandler) Respond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "bulk_order_id"))
	if err != nil {
		utils.WriteError(w, "invalid bulk order id", http.StatusBadRequest)
		return
	}

	var req respondRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var quoted decimal.Decimal
	if req.Accept {
		quoted, err = decimal.NewFromString(req.QuotedPrice)
		if err != nil || !quoted.IsPositive() {
			utils.WriteError(w, "invalid quoted_price", http.StatusBadRequest)
			return
		}
	}

	answered, err := h.svc.Respond(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, id, req.Accept, quoted)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, BulkOrderEntityToJSON(answered), http.StatusOK)
}
