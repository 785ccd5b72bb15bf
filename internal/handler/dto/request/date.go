package request

import (
	"strings"
	"time"

	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"
)

var ErrInvalidDate = errs.NewCategorized("invalid date, expected YYYY-MM-DD", errs.ErrValidation)

// parseOptionalDate treats nil and blank input as absent.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := clock.ParseDate(strings.TrimSpace(*s))
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidDate, "date %q", *s)
	}
	return &d, nil
}
