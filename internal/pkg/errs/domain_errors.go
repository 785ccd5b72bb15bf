package errs

import cr "github.com/cockroachdb/errors"

// Category markers. Concrete errors are tagged with one of these via Mark and
// the HTTP boundary maps each category to a status code.
var (
	ErrNotFound          = cr.New("referenced entity not found")
	ErrInvalidTransition = cr.New("invalid status transition")
	ErrBusinessRule      = cr.New("business rule violation")
	ErrValidation        = cr.New("validation failed")
	ErrConflict          = cr.New("unique constraint conflict")
	ErrUnauthenticated   = cr.New("authentication required")
	ErrForbidden         = cr.New("insufficient role")
)

// NewCategorized creates a sentinel that carries its category marker.
func NewCategorized(msg string, category error) error {
	return cr.Mark(cr.New(msg), category)
}
