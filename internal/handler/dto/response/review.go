package response

import (
	"time"

	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"clienteId"`
	CustomerName string          `json:"clienteNome"`
	BookID       uuid.UUID       `json:"livroId"`
	BookTitle    string          `json:"livroTitulo"`
	Rating       decimal.Decimal `json:"nota"`
	Comment      string          `json:"comentario"`
	ReviewedOn   string          `json:"dtAvaliacao"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	res := &ReviewResponse{}
	mustCopy(res, v)
	return res
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}
