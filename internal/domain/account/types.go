package account

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// legacy role names still present in older clients and seed data
var roleAliases = map[string]Role{
	"CLIENTE":       RoleCustomer,
	"FUNCIONARIO":   RoleStaff,
	"ADMINISTRADOR": RoleAdmin,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	if alias, ok := roleAliases[normalized]; ok {
		return alias, nil
	}
	role := Role(normalized)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
