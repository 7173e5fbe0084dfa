package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/middleware"
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/internal/service"
	"github.com/agrilink/market-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	Product(ctx context.Context, id uuid.UUID) (entities.Product, error)
	Products(ctx context.Context, filter repo.ProductFilter) ([]entities.Product, error)
	Create(ctx context.Context, actor service.Actor, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, actor service.Actor, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, actor service.Actor, id uuid.UUID) error
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
	auth     *middleware.Auth
}

func NewProductHandler(logger *slog.Logger, svc ProductService, auth *middleware.Auth) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "product")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{product_id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Authenticate, h.auth.Require(entities.RoleFarmer, entities.RoleAdmin))
			r.Post("/", h.Create)
			r.Put("/{product_id}", h.Update)
			r.Delete("/{product_id}", h.Delete)
		})
	})
}

type productRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Unit        string `json:"unit" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Stock       int    `json:"stock" validate:"gte=0"`
	IsActive    bool   `json:"is_active"`
	IsOrganic   bool   `json:"is_organic"`
}

func (req productRequest) toEntity() (entities.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return entities.Product{}, errInvalidPrice
	}
	return entities.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Unit:        req.Unit,
		Price:       price,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
		IsOrganic:   req.IsOrganic,
	}, nil
}

// List returns the catalog.
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category   query  string  false  "Filter by category"
// @Param        farmer_id  query  string  false  "Filter by farmer"
// @Param        active     query  bool    false  "Only active products"
// @Param        limit      query  int     false  "Page size"
// @Param        offset     query  int     false  "Page offset"
// @Success      200  {array}  Product
// @Router       /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := repo.ProductFilter{
		Category:   r.URL.Query().Get("category"),
		OnlyActive: r.URL.Query().Get("active") == "true",
	}
	if raw := r.URL.Query().Get("farmer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteError(w, "invalid farmer_id", http.StatusBadRequest)
			return
		}
		filter.FarmerID = id
	}
	filter.Limit, filter.Offset = pagination(r)

	products, err := h.svc.Products(ctx, filter)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// Get returns one product.
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        product_id  path  string  true  "Product id"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{product_id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.svc.Product(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// Create adds a product to the farmer's catalog.
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  productRequest  true  "Product"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req productRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := req.toEntity()
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, product)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(created), http.StatusCreated)
}

// Update replaces a product's editable fields.
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path  string          true  "Product id"
// @Param        request     body  productRequest  true  "Product"
// @Success      200  {object}  Product
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{product_id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req productRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := req.toEntity()
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	product.ID = id

	updated, err := h.svc.Update(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, product)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(updated), http.StatusOK)
}

// Delete removes a product.
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path  string  true  "Product id"
// @Success      204  "No Content"
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{product_id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(ctx, service.Actor{ID: actor.ID, Role: actor.Role}, id); err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pagination(r *http.Request) (limit, offset uint64) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = v
		}
	}
	return limit, offset
}
