package api

import (
	"net/http"
	"strings"

	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	cmds commands.BookCommands
	q    queries.BookQueries
}

func NewBookHandler(cmds commands.BookCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

// @Summary List books
// @Tags livros
// @Produce json
// @Success 200 {array} resdto.BookResponse
// @Router /livros [get]
func (h *BookHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookViews(views))
}

// @Summary Search books
// @Description Title and author match substrings ignoring case, genre matches exactly ignoring case
// @Tags livros
// @Produce json
// @Param titulo query string false "Title contains"
// @Param autor query string false "Author contains"
// @Param genero query string false "Genre"
// @Success 200 {array} resdto.BookResponse
// @Router /livros/buscar [get]
func (h *BookHandler) Search(c *gin.Context) {
	var req reqdto.BookSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	views, err := h.q.Search(c.Request.Context(), queries.BookFilter{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookViews(views))
}

// SearchBy serves the single-field search routes. The query parameter named
// like the field is required.
//
// @Summary Search books by one field
// @Tags livros
// @Produce json
// @Param titulo query string false "Title contains (for /buscar/titulo)"
// @Param autor query string false "Author contains (for /buscar/autor)"
// @Param genero query string false "Genre (for /buscar/genero)"
// @Success 200 {array} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Router /livros/buscar/titulo [get]
// @Router /livros/buscar/autor [get]
// @Router /livros/buscar/genero [get]
func (h *BookHandler) SearchBy(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.GetQuery(field)
		if !ok || strings.TrimSpace(value) == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSearchValue, "Missing parameter "+field)
			return
		}
		var filter queries.BookFilter
		switch field {
		case "titulo":
			filter.Title = value
		case "autor":
			filter.Author = value
		case "genero":
			filter.Genre = value
		}
		views, err := h.q.Search(c.Request.Context(), filter)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookViews(views))
	}
}

// @Summary Get book
// @Tags livros
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Router /livros/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Create book
// @Tags livros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookRequest true "Book request"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Router /livros [post]
func (h *BookHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.BookRequest
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

// @Summary Update book
// @Description Omitted or blank fields keep their stored value
// @Tags livros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Book patch"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /livros/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, p); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Delete book
// @Description Refused while transactions or reviews reference the book
// @Tags livros
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /livros/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
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

func (h *BookHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromBookView(view))
}
