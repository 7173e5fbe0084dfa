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
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (service.DashboardStats, error)
}

type AnalyticsHandler struct {
	logger *slog.Logger
	svc    AnalyticsService
	auth   *middleware.Auth
}

func NewAnalyticsHandler(logger *slog.Logger, svc AnalyticsService, auth *middleware.Auth) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger: logger.With(slog.String("handler", "analytics")),
		svc:    svc,
		auth:   auth,
	}
}

func (h *AnalyticsHandler) Init(r chi.Router) {
	r.With(h.auth.Authenticate, h.auth.Require(entities.RoleAdmin)).
		Get("/admin/analytics", h.Dashboard)
}

// Dashboard returns platform-wide aggregates.
// @Summary      Admin analytics
// @Description  Counts, delivered revenue and the platform commission slice
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Dashboard
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /admin/analytics [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.svc.Dashboard(ctx)
	if err != nil {
		writeServiceError(ctx, w, h.logger, err)
		return
	}

	utils.WriteJSON(w, DashboardToJSON(stats), http.StatusOK)
}
