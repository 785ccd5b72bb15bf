package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.NewCategorized("invalid cursor", errs.ErrValidation)

// Keyset is the position of the last row of a page, ordered by
// (created_at DESC, id DESC).
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Page is a slice of rows plus the cursor of the next page, nil on the last one.
type Page[T any] struct {
	Items []T
	Next  *Cursor
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (Keyset, error) {
	if cursor == "" {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "cursor is not base64url")
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "unknown cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "invalid timestamp")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "invalid id")
	}

	return Keyset{CreatedAt: time.UnixMicro(timestamp).UTC(), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// paginate fetches limit+1 rows to learn whether another page exists.
func paginate[T any](cursor *Cursor, limit int, key func(T) Keyset, fetch func(after *Keyset, limit int) ([]T, error)) (Page[T], error) {
	limit = ValidateLimit(limit)

	var after *Keyset
	if cursor != nil && cursor.After != "" {
		k, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return Page[T]{}, err
		}
		after = &k
	}

	rows, err := fetch(after, limit+1)
	if err != nil {
		return Page[T]{}, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := key(rows[limit-1])
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return Page[T]{Items: rows, Next: next}, nil
}
