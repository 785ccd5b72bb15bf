package shared

import (
	"slices"

	"library-backend/internal/domain/account"

	"github.com/google/uuid"
)

// Actor is the verified caller, taken from the token claims.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  account.Role
}

func (a Actor) Is(roles ...account.Role) bool {
	return slices.Contains(roles, a.Role)
}
