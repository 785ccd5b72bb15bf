package api

import (
	"net/http"
	"strconv"

	"library-backend/internal/handler/httperr"
	"library-backend/internal/handler/middleware"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/queries"
	"library-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingActor       = errs.NewCategorized("Authentication required", errs.ErrUnauthenticated)
	errMissingSearchValue = errs.NewCategorized("missing search value", errs.ErrValidation)
)

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func currentActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, errMissingActor)
		return shared.Actor{}, false
	}
	return actor, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return false
	}
	return true
}

// pageParams reads ?cursor= and ?limit=; limits are clamped by the query layer.
func pageParams(c *gin.Context) (*queries.Cursor, int, bool) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit")
			return nil, 0, false
		}
		limit = n
	}

	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit, true
}
