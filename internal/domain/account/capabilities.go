package account

import (
	"slices"

	"library-backend/internal/pkg/password"
)

type CredentialHolder interface {
	PasswordHash() string
}

type RoleHolder interface {
	Role() Role
}

// Principal is anything that can log in.
type Principal interface {
	CredentialHolder
	RoleHolder
}

func VerifyCredential(h CredentialHolder, raw string) bool {
	return password.ComparePassword(h.PasswordHash(), raw) == nil
}

func HasRole(h RoleHolder, roles ...Role) bool {
	return slices.Contains(roles, h.Role())
}
