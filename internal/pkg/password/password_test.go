//go:build unit

package password_test

import (
	"testing"

	"library-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	t.Run("ハッシュと照合", func(t *testing.T) {
		hash, err := password.HashPassword("secret123")
		require.NoError(t, err)
		assert.True(t, password.IsHashed(hash))
		assert.NoError(t, password.ComparePassword(hash, "secret123"))
		assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	})

	t.Run("ダミー照合は本物のbcryptで失敗する", func(t *testing.T) {
		assert.ErrorIs(t, password.CompareDummy("secret123"), password.ErrComparisonFailed)
		assert.ErrorIs(t, password.CompareDummy(""), password.ErrInvalidPassword)
	})

	t.Run("空パスワードNG", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	})

	t.Run("ハッシュ済みはそのまま", func(t *testing.T) {
		hash, err := password.HashPassword("secret123")
		require.NoError(t, err)

		again, err := password.EnsureHashed(hash)
		require.NoError(t, err)
		assert.Equal(t, hash, again)

		fresh, err := password.EnsureHashed("plain-text")
		require.NoError(t, err)
		assert.NotEqual(t, "plain-text", fresh)
		assert.NoError(t, password.ComparePassword(fresh, "plain-text"))
	})
}
