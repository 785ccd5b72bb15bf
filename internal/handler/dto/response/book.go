package response

import (
	"time"

	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookResponse struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"titulo"`
	Author         string           `json:"autor"`
	PublishedOn    *string          `json:"dtPublicacao"`
	Genre          string           `json:"genero"`
	PurchasePrice  decimal.Decimal  `json:"vlCompra"`
	RentalPrice    *decimal.Decimal `json:"vlAluguel"`
	CoverURL       string           `json:"capaUrl"`
	ShortSummary   string           `json:"resumoCurto"`
	Synopsis       string           `json:"sinopse"`
	CreatedByEmail *string          `json:"createdByEmail,omitempty"`
	CreatedByRole  *string          `json:"createdByRole,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	res := &BookResponse{}
	mustCopy(res, v)
	return res
}

func FromBookViews(views []*queries.BookView) []*BookResponse {
	res := make([]*BookResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}
