package api

import (
	"net/http"

	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List reviews
// @Tags avaliacoes
// @Produce json
// @Success 200 {array} resdto.ReviewResponse
// @Router /avaliacoes [get]
func (h *ReviewHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Get review
// @Tags avaliacoes
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /avaliacoes/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Reviews of a book
// @Tags avaliacoes
// @Produce json
// @Param livroId path string true "Book ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /avaliacoes/livro/{livroId} [get]
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("livroId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	views, err := h.q.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Reviews by a customer
// @Tags avaliacoes
// @Produce json
// @Param clienteId path string true "Customer ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /avaliacoes/cliente/{clienteId} [get]
func (h *ReviewHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Create review
// @Description The customer must hold a non-cancelled transaction for the book
// @Tags avaliacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /avaliacoes [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
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

// @Summary Update review
// @Description Update own review by ID
// @Tags avaliacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /avaliacoes/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput(), actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Delete own review, or any review as admin
// @Tags avaliacoes
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /avaliacoes/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromReviewView(view))
}
