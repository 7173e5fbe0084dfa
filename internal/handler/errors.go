package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/repo"
	"github.com/agrilink/market-service/pkg/utils"
)

var errInvalidPrice = errors.New("invalid price")

// writeServiceError maps domain errors to HTTP responses. Anything unmapped is
// logged and reported as a 500 without leaking internals.
func writeServiceError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrCartItemNotFound),
		errors.Is(err, entities.ErrWalletNotFound),
		errors.Is(err, entities.ErrReviewNotFound),
		errors.Is(err, entities.ErrSubscriptionNotFound),
		errors.Is(err, entities.ErrBulkOrderNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, entities.ErrInvalidCredentials):
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)

	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, err.Error(), http.StatusForbidden)

	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrBelowMinimum):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrEmailTaken),
		errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrInsufficientBalance),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrBulkOrderClosed),
		errors.Is(err, repo.ErrDuplicateReview),
		isUnavailable(err):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func isUnavailable(err error) bool {
	var unavailable *entities.ProductUnavailableError
	return errors.As(err, &unavailable)
}
