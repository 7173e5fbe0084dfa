package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/middleware"
	"github.com/agrilink/market-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReviewService interface {
	Create(ctx context.Context, consumerID, productID uuid.UUID, rating int, comment string) (entities.Review, error)
	ByProduct(ctx context.Context, productID uuid.UUID, limit, offset uint64) ([]entities.Review, error)
}

type ReviewHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ReviewService
	auth     *middleware.Auth
}

func NewReviewHandler(logger *slog.Logger, svc ReviewService, auth *middleware.Auth) *ReviewHandler {
	return &ReviewHandler{
		logger:   logger.With(slog.String("handler", "review")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *ReviewHandler) Init(r chi.Router) {
	r.Get("/products/{product_id}/reviews", h.List)
	r.With(h.auth.Authenticate, h.auth.Require(entities.RoleConsumer)).
		Post("/products/{product_id}/reviews", h.Create)
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// Create leaves a review on a product. One review per consumer per product.
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path  string               true  "Product id"
// @Param        request     body  createReviewRequest  true  "Review"
// @Success      201  {object}  Review
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Failure      409  {object}  utils.ErrorResponse "Already reviewed"
// @Router       /products/{product_id}/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req createReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.svc.Create(ctx, actor.ID, productID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// List returns a product's reviews, newest first.
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        product_id  path   string  true   "Product id"
// @Param        limit       query  int     false  "Page size"
// @Param        offset      query  int     false  "Page offset"
// @Success      200  {array}  Review
// @Router       /products/{product_id}/reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	limit, offset := pagination(r)
	reviews, err := h.svc.ByProduct(ctx, productID, limit, offset)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	result := make([]Review, 0, len(reviews))
	for _, rev := range reviews {
		result = append(result, ReviewEntityToJSON(rev))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}
