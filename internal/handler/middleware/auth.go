package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"library-backend/internal/domain/access"
	"library-backend/internal/domain/account"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/jwt"
	"library-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

type Authorizer struct {
	tokens TokenValidator
	gate   *access.Gate
}

const (
	ctxActorKey  = "actor"
	ctxClaimsKey = "jwt_claims"
)

var (
	errAuthRequired = errs.NewCategorized("Authentication required", errs.ErrUnauthenticated)
	errAccessDenied = errs.NewCategorized("Access denied", errs.ErrForbidden)
)

func NewAuthorizer(tokens TokenValidator, gate *access.Gate) *Authorizer {
	return &Authorizer{
		tokens: tokens,
		gate:   gate,
	}
}

// Handle runs on every request. A missing or invalid token leaves the caller
// anonymous, and the gate decides whether that is enough for the route.
func (a *Authorizer) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var role account.Role

		if token := bearerToken(c); token != "" {
			claims, err := a.tokens.Validate(token)
			if err == nil {
				role, err = account.NewRole(claims.Role)
			}
			if err != nil {
				role = ""
				slog.Debug("Token rejected", "error", err.Error(), "path", c.Request.URL.Path)
			} else {
				actor := shared.Actor{ID: claims.UserID, Email: claims.Email(), Role: role}
				c.Set(ctxActorKey, actor)
				c.Set(ctxClaimsKey, map[string]any{
					"user_id": claims.UserID.String(),
					"email":   claims.Email(),
					"role":    role.String(),
				})
			}
		}

		switch a.gate.Authorize(c.Request.Method, c.Request.URL.Path, role) {
		case access.DenyUnauthenticated:
			httperr.AbortWithError(c, http.StatusUnauthorized, errAuthRequired, errAuthRequired.Error())
			return
		case access.DenyForbidden:
			httperr.AbortWithError(c, http.StatusForbidden, errAccessDenied, errAccessDenied.Error())
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}

	actor, ok := v.(shared.Actor)
	return actor, ok
}
