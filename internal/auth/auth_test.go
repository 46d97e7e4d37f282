package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("admin123", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("secret", 60)

	token, err := tokens.Generate("admin-1", "admin")
	require.NoError(t, err)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenRejections(t *testing.T) {
	tokens := NewTokenManager("secret", 60)

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Parse("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("different-secret", 60)
		token, err := other.Generate("admin-1", "admin")
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenManager("secret", -1)
		token, err := expired.Generate("admin-1", "admin")
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
