package service

import (
	"context"
	"time"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/pkg/utils"

	"github.com/google/uuid"
)

// Actor is the authenticated identity an operation runs on behalf of.
type Actor struct {
	ID   uuid.UUID
	Role entities.Role
}

func (a Actor) IsAdmin() bool { return a.Role == entities.RoleAdmin }

// Notifier delivers best-effort user notifications. Implementations must not
// return errors to callers; the core flows never block on notification
// delivery.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event string, payload map[string]any)
}

// Cache stores opaque byte values. Backed by either the in-process LRU or
// Redis depending on configuration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Del(ctx context.Context, key string)
}

func productCacheKey(id uuid.UUID) string {
	return "product:" + id.String()
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}
