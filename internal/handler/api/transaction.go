package api

import (
	"net/http"
	"strconv"

	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/domain/transaction"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultRenewalDays = transaction.DefaultRenewalDays

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description Newest first, keyset paginated
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.TransactionPageResponse
// @Failure 400 {object} httperr.Response
// @Router /compras [get]
func (h *TransactionHandler) List(c *gin.Context) {
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionPage(page))
}

// @Summary Get transaction
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Router /compras/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary List transactions of a customer
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param clienteId path string true "Customer ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.TransactionPageResponse
// @Router /compras/cliente/{clienteId} [get]
func (h *TransactionHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.q.ListByCustomer(c.Request.Context(), customerID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionPage(page))
}

// @Summary List transactions by status
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param status path string true "PENDING, IN_PROGRESS, FINISHED or CANCELLED"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.TransactionPageResponse
// @Failure 400 {object} httperr.Response
// @Router /compras/status/{status} [get]
func (h *TransactionHandler) ListByStatus(c *gin.Context) {
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.q.ListByStatus(c.Request.Context(), c.Param("status"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionPage(page))
}

// @Summary My transactions
// @Description Transactions of the authenticated customer, 204 when there are none
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.TransactionPageResponse
// @Success 204
// @Router /compras/minhas [get]
func (h *TransactionHandler) Mine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.q.ListMine(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if len(page.Items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionPage(page))
}

// @Summary Create transaction
// @Description Customers always buy for themselves; staff may name the customer
// @Tags compras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTransactionRequest true "Transaction request"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /compras [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), in, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusCreated, id)
}

// @Summary Change status
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param status query string true "Target status"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /compras/{id}/status [patch]
func (h *TransactionHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), id, c.Query("status")); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Finalize transaction
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /compras/{id}/finalizar [patch]
func (h *TransactionHandler) Finalize(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Finalize(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Renew rental
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param dias query int false "Extra days (default 15, at most 365)"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /compras/{id}/renovar [patch]
func (h *TransactionHandler) Renew(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	days := defaultRenewalDays
	if raw := c.Query("dias"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid number of days")
			return
		}
		if n > transaction.MaxRenewalDays {
			httperr.Abort(c, transaction.ErrRenewalTooLong)
			return
		}
		days = n
	}

	if err := h.cmds.Renew(c.Request.Context(), id, days, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Delete transaction
// @Tags compras
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /compras/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromTransactionView(view))
}
