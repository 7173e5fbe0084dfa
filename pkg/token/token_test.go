package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueVerify(t *testing.T) {
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		m := NewManager("secret", time.Hour)

		raw, err := m.Issue(userID, "farmer")
		require.NoError(t, err)

		claims, err := m.Verify(raw)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "farmer", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		m := NewManager("secret", -time.Minute)

		raw, err := m.Issue(userID, "consumer")
		require.NoError(t, err)

		_, err = m.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		m := NewManager("secret", time.Hour)
		other := NewManager("other", time.Hour)

		raw, err := m.Issue(userID, "consumer")
		require.NoError(t, err)

		_, err = other.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		m := NewManager("secret", time.Hour)
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
