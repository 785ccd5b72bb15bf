//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"library-backend/internal/handler/dto/request"
	"library-backend/internal/handler/dto/response"
	"library-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) *response.LoginResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token, "token missing from login response")
	return &res
}
