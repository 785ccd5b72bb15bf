package commands

import (
	"library-backend/internal/domain/account"
	"library-backend/internal/domain/review"
	"library-backend/internal/domain/transaction"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.NewCategorized("invalid email or password", errs.ErrValidation)
	ErrEmailTaken         = errs.NewCategorized("email already registered", errs.ErrConflict)
	ErrCPFTaken           = errs.NewCategorized("cpf already registered", errs.ErrConflict)
	ErrNotOwner           = errs.NewCategorized("operation restricted to the owner", errs.ErrForbidden)
	ErrAccountReferenced  = errs.NewCategorized("account is referenced by transactions or reviews", errs.ErrBusinessRule)
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrConstraintViolated = errs.NewCategorized("request violates a data constraint", errs.ErrValidation)
)

// Constraint names from migrations/001_initial_schema.sql.
const (
	constraintAccountEmail  = "accounts_email_key"
	constraintAccountCPF    = "accounts_cpf_key"
	constraintReviewOnce    = "reviews_customer_book_key"
	constraintEndAfterStart = "transactions_end_after_start"
)

// translateDuplicate turns a DUPLICATE_KEY repository error raised by a
// concurrent insert into the conflict the pre-check would have reported.
func translateDuplicate(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	switch infra.ConstraintOf(err) {
	case constraintAccountEmail:
		return ErrEmailTaken
	case constraintAccountCPF:
		return ErrCPFTaken
	case constraintReviewOnce:
		return review.ErrAlreadyReviewed
	default:
		return errs.Mark(err, errs.ErrConflict)
	}
}

// translateCheck reports a CHECK violation as invalid input instead of a
// database failure, without leaking the driver message.
func translateCheck(err error) error {
	if !infra.IsKind(err, infra.KindCheckViolated) {
		return err
	}
	if infra.ConstraintOf(err) == constraintEndAfterStart {
		return transaction.ErrEndBeforeStart
	}
	return ErrConstraintViolated
}

func accountNotFound(role account.Role) error {
	if role == account.RoleCustomer {
		return shared.ErrCustomerNotFound
	}
	return shared.ErrAccountNotFound
}
