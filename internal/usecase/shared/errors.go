package shared

import (
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"
)

var (
	ErrTransactionNotFound = errs.NewCategorized("transaction not found", errs.ErrNotFound)
	ErrBookNotFound        = errs.NewCategorized("book not found", errs.ErrNotFound)
	ErrCustomerNotFound    = errs.NewCategorized("customer not found", errs.ErrNotFound)
	ErrAccountNotFound     = errs.NewCategorized("account not found", errs.ErrNotFound)
	ErrReviewNotFound      = errs.NewCategorized("review not found", errs.ErrNotFound)
)

// NotFoundAs replaces a repository NOT_FOUND with the given domain error.
func NotFoundAs(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
