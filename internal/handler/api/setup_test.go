//go:build unit

package api_test

import (
	"testing"

	"library-backend/internal/domain/access"
	"library-backend/internal/domain/account"
	"library-backend/internal/handler/middleware"
	"library-backend/internal/pkg/config"
	"library-backend/internal/usecase/shared"
	"library-backend/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var jwtHelper = authtest.NewJWTHelper(config.NewTestConfig().JWT)

// newEngine mirrors the production chain minus logging and CORS, so the
// permission table applies to every route under test.
func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	authorizer := middleware.NewAuthorizer(jwtHelper.Service(), access.NewDefaultGate())
	engine.Use(middleware.CustomRecovery(), middleware.ErrorHandler(), authorizer.Handle())
	return engine
}

type caller struct {
	actor shared.Actor
	token string
}

func newCaller(t *testing.T, role account.Role, email string) caller {
	t.Helper()
	actor := shared.Actor{ID: uuid.New(), Email: email, Role: role}
	return caller{
		actor: actor,
		token: jwtHelper.GenerateToken(t, actor.Email, actor.Role, actor.ID),
	}
}
