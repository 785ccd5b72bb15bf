package review

import (
	"strings"
	"unicode/utf8"

	"library-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRating   = errs.NewCategorized("rating must be between 0 and 5", errs.ErrValidation)
	ErrCommentTooLong  = errs.NewCategorized("comment must be at most 1000 characters", errs.ErrValidation)
	ErrNotEligible     = errs.NewCategorized("customer has no active transaction for this book", errs.ErrBusinessRule)
	ErrAlreadyReviewed = errs.NewCategorized("customer already reviewed this book", errs.ErrConflict)
)

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(5)
)

const maxCommentLength = 1000

type Rating struct {
	value decimal.Decimal
}

// NewRating keeps one decimal place.
func NewRating(v decimal.Decimal) (Rating, error) {
	if v.LessThan(minRating) || v.GreaterThan(maxRating) {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v.Round(1)}, nil
}

func (r Rating) Value() decimal.Decimal {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: s}, nil
}

func (c Comment) Value() string {
	return c.value
}
