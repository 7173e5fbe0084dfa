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
	"github.com/shopspring/decimal"
)

type WalletService interface {
	Wallet(ctx context.Context, farmerID uuid.UUID) (entities.Wallet, error)
	Withdraw(ctx context.Context, farmerID uuid.UUID, amount decimal.Decimal) (entities.WalletTransaction, error)
	Transactions(ctx context.Context, farmerID uuid.UUID, limit, offset uint64) ([]entities.WalletTransaction, error)
	Earnings(ctx context.Context, farmerID uuid.UUID) (entities.EarningsSummary, error)
}

type WalletHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      WalletService
	auth     *middleware.Auth
}

func NewWalletHandler(logger *slog.Logger, svc WalletService, auth *middleware.Auth) *WalletHandler {
	return &WalletHandler{
		logger:   logger.With(slog.String("handler", "wallet")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *WalletHandler) Init(r chi.Router) {
	r.Route("/wallet", func(r chi.Router) {
		r.Use(h.auth.Authenticate, h.auth.Require(entities.RoleFarmer))
		r.Get("/", h.Get)
		r.Get("/transactions", h.Transactions)
		r.Get("/earnings", h.Earnings)
		r.Post("/withdraw", h.Withdraw)
	})
}

// Get returns the farmer's wallet.
// @Summary      Get wallet
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Wallet
// @Router       /wallet [get]
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	wallet, err := h.svc.Wallet(ctx, actor.ID)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, WalletEntityToJSON(wallet), http.StatusOK)
}

type withdrawRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// Withdraw requests a payout from the wallet balance.
// @Summary      Request a withdrawal
// @Description  Deducts the amount from the balance immediately and records a pending payout
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  withdrawRequest  true  "Amount"
// @Success      201  {object}  WalletTransaction
// @Failure      400  {object}  utils.ErrorResponse "Below minimum withdrawal"
// @Failure      409  {object}  utils.ErrorResponse "Insufficient balance"
// @Router       /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	var req withdrawRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		utils.WriteError(w, "invalid amount", http.StatusBadRequest)
		return
	}

	txn, err := h.svc.Withdraw(ctx, actor.ID, amount)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	withdrawalsRequested.Inc()
	utils.WriteJSON(w, WalletTransactionEntityToJSON(txn), http.StatusCreated)
}

// Transactions returns the wallet ledger, newest first.
// @Summary      List wallet transactions
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}  WalletTransaction
// @Router       /wallet/transactions [get]
func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	limit, offset := pagination(r)
	txns, err := h.svc.Transactions(ctx, actor.ID, limit, offset)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	result := make([]WalletTransaction, 0, len(txns))
	for _, t := range txns {
		result = append(result, WalletTransactionEntityToJSON(t))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// Earnings returns the earnings dashboard.
// @Summary      Earnings summary
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  EarningsSummary
// @Router       /wallet/earnings [get]
func (h *WalletHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.ActorFromContext(ctx)

	summary, err := h.svc.Earnings(ctx, actor.ID)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, EarningsSummaryToJSON(summary), http.StatusOK)
}
