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

type SubscriptionService interface {
	Create(ctx context.Context, consumerID uuid.UUID, frequency entities.SubscriptionFrequency, address string, items []service.SubscriptionItemInput) (entities.Subscription, error)
	Subscription(ctx context.Context, actor service.Actor, id uuid.UUID) (entities.Subscription, error)
	ByConsumer(ctx context.Context, consumerID uuid.UUID) ([]entities.Subscription, error)
	ChangeFrequency(ctx context.Context, actor service.Actor, id uuid.UUID, frequency entities.SubscriptionFrequency) (entities.Subscription, error)
	Pause(ctx context.Context, actor service.Actor, id uuid.UUID) (entities.Subscription, error)
	Resume(ctx context.Context, actor service.Actor, id uuid.UUID) (entities.Subscription, error)
	Cancel(ctx context.Context, actor service.Actor, id uuid.UUID) (entities.Subscription, error)
}

type SubscriptionHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      SubscriptionService
	auth     *middleware.Auth
}

func NewSubscriptionHandler(logger *slog.Logger, svc SubscriptionService, auth *middleware.Auth) *SubscriptionHandler {
	return &SubscriptionHandler{
		logger:   logger.With(slog.String("handler", "subscription")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *SubscriptionHandler) Init(r chi.Router) {
	r.Route("/subscriptions", func(r chi.Router) {
		r.Use(h.auth.Authenticate, h.auth.Require(entities.RoleConsumer, entities.RoleAdmin))
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{subscription_id}", h.Get)
		r.Put("/{subscription_id}/frequency", h.ChangeFrequency)
		r.Post("/{subscription_id}/pause", h.Pause)
		r.Post("/{subscription_id}/resume", h.Resume)
		r.Post("/{subscription_id}/cancel", h.Cancel)
	})
}

type subscriptionItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type createSubscriptionRequest struct {
	Frequency       string                    `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
	DeliveryAddress string                    `json:"delivery_address" validate:"required"`
	Items           []subscriptionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Create sets up a recurring delivery box.
// @Summary      Create a subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  createSubscriptionRequest  true  "Subscription"
// @Success      201  {object}  Subscription
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req createSubscriptionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]service.SubscriptionItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.SubscriptionItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	sub, err := h.svc.Create(ctx, actor.ID, entities.SubscriptionFrequency(req.Frequency), req.DeliveryAddress, items)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, SubscriptionEntityToJSON(sub), http.StatusCreated)
}

// List returns the consumer's subscriptions.
// @Summary      List subscriptions
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  Subscription
// @Router       /subscriptions [get]
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	subs, err := h.svc.ByConsumer(ctx, actor.ID)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	result := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		result = append(result, SubscriptionEntityToJSON(s))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// Get returns one subscription with its items.
// @Summary      Get a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscription_id  path  string  true  "Subscription id"
// @Success      200  {object}  Subscription
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /subscriptions/{subscription_id} [get]
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withSubscription(w, r, h.svc.Subscription)
}

type changeFrequencyRequest struct {
	Frequency string `json:"frequency" validate:"required,oneof=weekly biweekly monthly"`
}

// ChangeFrequency reschedules the box.
// @Summary      Change subscription frequency
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subscription_id  path  string                  true  "Subscription id"
// @Param        request          body  changeFrequencyRequest  true  "New frequency"
// @Success      200  {object}  Subscription
// @Router       /subscriptions/{subscription_id}/frequency [put]
func (h *SubscriptionHandler) ChangeFrequency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "subscription_id"))
	if err != nil {
		utils.WriteError(w, "invalid subscription id", http.StatusBadRequest)
		return
	}

	var req changeFrequencyRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sub, err := h.svc.ChangeFrequency(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, id, entities.SubscriptionFrequency(req.Frequency))
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, SubscriptionEntityToJSON(sub), http.StatusOK)
}

// Pause suspends deliveries without losing the box.
// @Summary      Pause a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscription_id  path  string  true  "Subscription id"
// @Success      200  {object}  Subscription
// @Router       /subscriptions/{subscription_id}/pause [post]
func (h *SubscriptionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.withSubscription(w, r, h.svc.Pause)
}

// Resume restarts a paused subscription.
// @Summary      Resume a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscription_id  path  string  true  "Subscription id"
// @Success      200  {object}  Subscription
// @Router       /subscriptions/{subscription_id}/resume [post]
func (h *SubscriptionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.withSubscription(w, r, h.svc.Resume)
}

// Cancel deactivates the subscription permanently.
// @Summary      Cancel a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscription_id  path  string  true  "Subscription id"
// @Success      200  {object}  Subscription
// @Router       /subscriptions/{subscription_id}/cancel [post]
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.withSubscription(w, r, h.svc.Cancel)
}

func (h *SubscriptionHandler) withSubscription(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, actor service.Actor, id uuid.UUID) (entities.Subscription, error),
) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "subscription_id"))
	if err != nil {
		utils.WriteError(w, "invalid subscription id", http.StatusBadRequest)
		return
	}

	sub, err := fn(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, id)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, SubscriptionEntityToJSON(sub), http.StatusOK)
}
