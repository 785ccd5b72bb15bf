//go:build unit

package db_test

import (
	"testing"

	"library-backend/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	t.Run("select uses numbered placeholders", func(t *testing.T) {
		sql, args, err := db.From("books").Select("id").Where(goqu.C("genre").Eq("Romance")).ToSQL()
		require.NoError(t, err)
		assert.Equal(t, `SELECT "id" FROM "books" WHERE ("genre" = $1)`, sql)
		assert.Equal(t, []any{"Romance"}, args)
	})

	t.Run("row lock", func(t *testing.T) {
		sql, _, err := db.From("transactions").Where(goqu.C("id").Eq("x")).ForUpdate(exp.Wait).ToSQL()
		require.NoError(t, err)
		assert.Contains(t, sql, "FOR UPDATE")
	})

	t.Run("delete", func(t *testing.T) {
		sql, args, err := db.Delete("reviews").Where(goqu.C("id").Eq("x")).ToSQL()
		require.NoError(t, err)
		assert.Equal(t, `DELETE FROM "reviews" WHERE ("id" = $1)`, sql)
		assert.Equal(t, []any{"x"}, args)
	})
}
