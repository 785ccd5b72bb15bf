package api

import (
	"net/http"

	"library-backend/internal/domain/account"
	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/handler/middleware"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"
	"library-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler serves the accounts of a single role; one instance is
// mounted per collection (clientes, funcionarios, administradores).
type AccountHandler struct {
	role account.Role
	cmds commands.AccountCommands
	q    queries.AccountQueries
}

type AccountHandlers struct {
	Customers *AccountHandler
	Staff     *AccountHandler
	Admins    *AccountHandler
}

func NewAccountHandlers(cmds commands.AccountCommands, q queries.AccountQueries) *AccountHandlers {
	return &AccountHandlers{
		Customers: &AccountHandler{role: account.RoleCustomer, cmds: cmds, q: q},
		Staff:     &AccountHandler{role: account.RoleStaff, cmds: cmds, q: q},
		Admins:    &AccountHandler{role: account.RoleAdmin, cmds: cmds, q: q},
	}
}

// @Summary List accounts
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AccountResponse
// @Router /clientes [get]
// @Router /funcionarios [get]
// @Router /administradores [get]
func (h *AccountHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), h.role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary Get account
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /clientes/{id} [get]
// @Router /funcionarios/{id} [get]
// @Router /administradores/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Get customer by CPF
// @Description Punctuation is ignored
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Param cpf path string true "CPF"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /clientes/cpf/{cpf} [get]
func (h *AccountHandler) GetByCPF(c *gin.Context) {
	view, err := h.q.GetByCPF(c.Request.Context(), h.role, c.Param("cpf"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Get customer by email
// @Description Case is ignored
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /clientes/email/{email} [get]
func (h *AccountHandler) GetByEmail(c *gin.Context) {
	view, err := h.q.GetByEmail(c.Request.Context(), h.role, c.Param("email"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Create account
// @Tags contas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AccountRequest true "Account request"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Router /clientes [post]
// @Router /funcionarios [post]
// @Router /administradores [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req reqdto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	var creator *shared.Actor
	if actor, ok := middleware.GetActor(c); ok {
		creator = &actor
	}

	id, err := h.cmds.Create(c.Request.Context(), h.role, in, creator)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusCreated, id)
}

// @Summary Update account
// @Description Omitted or blank fields keep their stored value
// @Tags contas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body reqdto.UpdateAccountRequest true "Account patch"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clientes/{id} [put]
// @Router /funcionarios/{id} [put]
// @Router /administradores/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), h.role, id, p, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Delete account
// @Tags contas
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clientes/{id} [delete]
// @Router /funcionarios/{id} [delete]
// @Router /administradores/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), h.role, id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), h.role, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromAccountView(view))
}
