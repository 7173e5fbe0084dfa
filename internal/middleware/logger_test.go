package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrilink/market-service/internal/entities"
	"github.com/agrilink/market-service/internal/middleware"
	"github.com/agrilink/market-service/pkg/token"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tokens := token.NewManager("test-secret-at-least-16-bytes", time.Hour)
	auth := middleware.NewAuth(tokens)
	userID := uuid.New()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.With(auth.Authenticate).Get("/private", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/public", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	t.Run("authenticated request carries the actor", func(t *testing.T) {
		buf.Reset()

		raw, err := tokens.Issue(userID, string(entities.RoleFarmer))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, buf.String(), `"actor_id":"`+userID.String()+`"`)
		assert.Contains(t, buf.String(), `"role":"farmer"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("anonymous request is logged without an actor", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, buf.String(), `"path":"/public"`)
		assert.NotContains(t, buf.String(), "actor_id")
	})

	t.Run("rejected token is logged with its status", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, buf.String(), `"status":401`)
		assert.NotContains(t, buf.String(), "actor_id")
	})
}
