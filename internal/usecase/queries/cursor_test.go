//go:build unit

package queries

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 12, 123456000, time.UTC)
	id := uuid.New()

	got, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, at, got.CreatedAt)
	assert.Equal(t, id, got.ID)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"not base64": "%%%",
		"no version": base64.URLEncoding.EncodeToString([]byte("123-" + uuid.NewString())),
		"bad time":   base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":   base64.URLEncoding.EncodeToString([]byte("v1:123-nope")),
		"no divider": base64.URLEncoding.EncodeToString([]byte("v1:123")),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeAfterCursor(cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, ErrInvalidCursor))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-3))
	assert.Equal(t, 5, ValidateLimit(5))
	assert.Equal(t, MaxListLimit, ValidateLimit(10_000))
}

func TestPaginate(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]Keyset, 5)
	for i := range rows {
		rows[i] = Keyset{CreatedAt: base.Add(-time.Duration(i) * time.Minute), ID: uuid.New()}
	}
	identity := func(k Keyset) Keyset { return k }

	t.Run("first page with more rows", func(t *testing.T) {
		var gotAfter *Keyset
		var gotLimit int
		page, err := paginate(nil, 2, identity, func(after *Keyset, limit int) ([]Keyset, error) {
			gotAfter, gotLimit = after, limit
			return rows[:limit], nil
		})
		require.NoError(t, err)
		assert.Nil(t, gotAfter)
		assert.Equal(t, 3, gotLimit)
		assert.Len(t, page.Items, 2)
		require.NotNil(t, page.Next)

		next, err := DecodeAfterCursor(page.Next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, next.ID)
	})

	t.Run("last page", func(t *testing.T) {
		page, err := paginate(&Cursor{After: EncodeAfterCursor(rows[1].CreatedAt, rows[1].ID)}, 10, identity,
			func(after *Keyset, _ int) ([]Keyset, error) {
				require.NotNil(t, after)
				assert.Equal(t, rows[1].ID, after.ID)
				return rows[2:], nil
			})
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.Nil(t, page.Next)
	})

	t.Run("fetch error", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := paginate(nil, 10, identity, func(*Keyset, int) ([]Keyset, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
	})
}
