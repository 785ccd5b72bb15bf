//go:build unit

package errs_test

import (
	"testing"

	"library-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategorizedErrors(t *testing.T) {
	errBookMissing := errs.NewCategorized("book not found", errs.ErrNotFound)

	t.Run("カテゴリで判定できる", func(t *testing.T) {
		assert.True(t, errs.Is(errBookMissing, errs.ErrNotFound))
		assert.False(t, errs.Is(errBookMissing, errs.ErrForbidden))
	})

	t.Run("ラップ後も判定できる", func(t *testing.T) {
		wrapped := errs.Wrap(errBookMissing, "create transaction")
		assert.True(t, errs.Is(wrapped, errBookMissing))
		assert.True(t, errs.Is(wrapped, errs.ErrNotFound))
	})

	t.Run("Markで後付けしたカテゴリ", func(t *testing.T) {
		err := errs.Mark(errs.Newf("from %s to %s", "FINISHED", "PENDING"), errs.ErrInvalidTransition)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, "from FINISHED to PENDING", err.Error())
	})

	t.Run("nilのWrapはnil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "noop"))
	})
}
