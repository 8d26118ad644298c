//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newService := func(secret string) *Service {
		s := NewService(secret, time.Hour)
		s.now = func() time.Time { return base }
		return s
	}

	t.Run("issued token validates and carries the email", func(t *testing.T) {
		s := newService("secret")
		token, expiresAt, err := s.GenerateToken("jane@partner.example.com")
		require.NoError(t, err)
		assert.Equal(t, base.Add(time.Hour), expiresAt)

		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "jane@partner.example.com", claims.Email)
		assert.True(t, claims.Verified)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		token, _, err := newService("other").GenerateToken("jane@partner.example.com")
		require.NoError(t, err)

		_, err = newService("secret").ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		s := newService("secret")
		token, _, err := s.GenerateToken("jane@partner.example.com")
		require.NoError(t, err)

		s.now = func() time.Time { return base.Add(2 * time.Hour) }
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := newService("secret").ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
