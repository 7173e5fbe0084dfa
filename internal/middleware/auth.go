package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/pkg/token"
	"github.com/agrilink/market-service/pkg/utils"

	"github.com/google/uuid"
)

type ctxKey int

const actorKey ctxKey = iota

// Actor is the authenticated principal attached to the request context.
type Actor struct {
	ID   uuid.UUID
	Role entities.Role
}

// TokenVerifier checks a raw bearer token and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (token.Claims, error)
}

// Auth builds the authentication middlewares from a token verifier.
type Auth struct {
	tokens TokenVerifier
}

func NewAuth(tokens TokenVerifier) *Auth {
	return &Auth{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token and stores the
// actor in the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := a.tokens.Verify(raw)
		if err != nil {
			utils.WriteError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		actor := Actor{ID: claims.UserID, Role: entities.Role(claims.Role)}
		if !actor.Role.Valid() {
			utils.WriteError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if entry, ok := r.Context().Value(logEntryKey).(*logEntry); ok {
			entry.actorID = actor.ID.String()
			entry.role = string(actor.Role)
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// Require allows only the listed roles past. Must run after Authenticate.
func (a *Auth) Require(roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteError(w, "forbidden", http.StatusForbidden)
		})
	}
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

// WithActor is a test helper to inject an actor into a context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimPrefix(header, prefix), true
}
