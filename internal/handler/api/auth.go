package api

import (
	"net/http"

	"library-backend/internal/domain/account"
	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds     commands.AuthCommands
	accounts queries.AccountQueries
}

func NewAuthHandler(cmds commands.AuthCommands, accounts queries.AccountQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, accounts: accounts}
}

// @Summary Login
// @Description Authenticate with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Register customer
// @Description Self-service sign-up, always creates a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.AccountRequest true "Account request"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/registro [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.accounts.GetByID(c.Request.Context(), account.RoleCustomer, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAccountView(view))
}

// @Summary Current account
// @Description Profile of the authenticated caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	view, err := h.accounts.Me(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}
