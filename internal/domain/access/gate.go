package access

import (
	"path"
	"slices"
	"strings"

	"library-backend/internal/domain/account"

	"github.com/bmatcuk/doublestar/v4"
)

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Rule matches when the method is listed (or Methods is empty) and the path
// matches one of Patterns. Public rules admit anonymous callers; otherwise
// the caller's role must be in Roles, or any role when Roles is empty.
type Rule struct {
	Methods  []string
	Patterns []string
	Public   bool
	Roles    []account.Role
}

func (r Rule) matches(method, p string) bool {
	if len(r.Methods) > 0 && !slices.Contains(r.Methods, method) {
		return false
	}
	for _, pattern := range r.Patterns {
		if matchPath(pattern, p) {
			return true
		}
	}
	return false
}

func (r Rule) decide(role account.Role) Decision {
	if r.Public {
		return Allow
	}
	if role == "" {
		return DenyUnauthenticated
	}
	if len(r.Roles) == 0 || slices.Contains(r.Roles, role) {
		return Allow
	}
	return DenyForbidden
}

// Gate evaluates rules in order; the first matching rule decides.
// Unmatched requests need any authenticated role.
type Gate struct {
	rules []Rule
}

func NewGate(rules []Rule) *Gate {
	return &Gate{rules: rules}
}

func NewDefaultGate() *Gate {
	return NewGate(DefaultRules())
}

// Authorize takes the role from an already validated token, or "" when the
// request carries no valid token.
func (g *Gate) Authorize(method, requestPath string, role account.Role) Decision {
	method = strings.ToUpper(method)
	p := normalize(requestPath)
	for _, r := range g.rules {
		if r.matches(method, p) {
			return r.decide(role)
		}
	}
	return Rule{}.decide(role)
}

func normalize(p string) string {
	if p == "" {
		return "/"
	}
	cleaned := path.Clean("/" + p)
	return cleaned
}

// "/x/**" also matches "/x" itself.
func matchPath(pattern, p string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok && p == base {
		return true
	}
	matched, err := doublestar.Match(pattern, p)
	return err == nil && matched
}
