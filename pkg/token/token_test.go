package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		signed, err := Generate(42, "secret", time.Hour)
		require.NoError(t, err)

		userID, err := Validate(signed, "secret")
		require.NoError(t, err)
		assert.Equal(t, uint(42), userID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed, err := Generate(42, "secret", time.Hour)
		require.NoError(t, err)

		_, err = Validate(signed, "other")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := Generate(42, "secret", -time.Minute)
		require.NoError(t, err)

		_, err = Validate(signed, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Validate("not-a-token", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
