package httperr

import (
	"net/http"

	"library-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status through its category marker. Uncategorized
// errors become a 500 without leaking their text.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := InternalMessage
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrInvalidTransition),
		errs.Is(err, errs.ErrBusinessRule),
		errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
