package queries

import "library-backend/internal/pkg/errs"

var ErrCustomersOnly = errs.NewCategorized("only customers have their own transactions", errs.ErrForbidden)
