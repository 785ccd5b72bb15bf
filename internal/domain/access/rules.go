package access

import (
	"net/http"

	"library-backend/internal/domain/account"
)

var (
	customer      = []account.Role{account.RoleCustomer}
	customerAdmin = []account.Role{account.RoleCustomer, account.RoleAdmin}
	staffAdmin    = []account.Role{account.RoleStaff, account.RoleAdmin}
	adminOnly     = []account.Role{account.RoleAdmin}
)

// DefaultRules is the route permission table. Order matters: specific rules
// must precede the broader ones that would otherwise shadow them.
func DefaultRules() []Rule {
	return []Rule{
		{Patterns: []string{"/api/auth/**"}, Public: true},
		{Methods: []string{http.MethodGet}, Patterns: []string{"/api/livros/**", "/api/avaliacoes/**"}, Public: true},
		{Methods: []string{http.MethodGet}, Patterns: []string{"/", "/index.html", "/pages/**", "/assets/**", "/health", "/swagger/**"}, Public: true},
		{Methods: []string{http.MethodOptions}, Patterns: []string{"/**"}, Public: true},

		{Methods: []string{http.MethodPost}, Patterns: []string{"/api/compras/**"}, Roles: customer},
		{Methods: []string{http.MethodPost, http.MethodPut}, Patterns: []string{"/api/avaliacoes/**"}, Roles: customer},
		{Methods: []string{http.MethodDelete}, Patterns: []string{"/api/avaliacoes/**"}, Roles: customerAdmin},

		{Methods: []string{http.MethodDelete}, Patterns: []string{"/api/funcionarios/**"}, Roles: adminOnly},
		{Patterns: []string{"/api/funcionarios/**"}, Roles: staffAdmin},
		{Methods: []string{http.MethodPost, http.MethodPut, http.MethodDelete}, Patterns: []string{"/api/livros/**"}, Roles: staffAdmin},

		{Methods: []string{http.MethodGet}, Patterns: []string{"/api/compras/minhas"}, Roles: customer},
		{Methods: []string{http.MethodPatch}, Patterns: []string{"/api/compras/*/renovar"}, Roles: customer},
		{Methods: []string{http.MethodGet, http.MethodPatch}, Patterns: []string{"/api/compras/**"}, Roles: staffAdmin},
		{Methods: []string{http.MethodDelete}, Patterns: []string{"/api/compras/**"}, Roles: adminOnly},

		{Patterns: []string{"/api/administradores/**"}, Roles: adminOnly},
	}
}
