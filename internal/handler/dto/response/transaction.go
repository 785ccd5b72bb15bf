package response

import (
	"time"

	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID           uuid.UUID `json:"id"`
	BookID       uuid.UUID `json:"livroId"`
	BookTitle    string    `json:"livroTitulo"`
	CustomerID   uuid.UUID `json:"clienteId"`
	CustomerName string    `json:"clienteNome"`
	StartDate    string    `json:"dtInicio"`
	EndDate      *string   `json:"dtFim"`
	Kind         string    `json:"tipo"`
	Status       string    `json:"status"`
	PaymentKind  string    `json:"tipoPagamento"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TransactionPageResponse struct {
	Items      []*TransactionResponse `json:"compras"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	res := &TransactionResponse{}
	mustCopy(res, v)
	return res
}

func FromTransactionPage(page queries.Page[*queries.TransactionView]) *TransactionPageResponse {
	items := make([]*TransactionResponse, 0, len(page.Items))
	mustCopy(&items, page.Items)

	res := &TransactionPageResponse{Items: items}
	if page.Next != nil {
		res.NextCursor = page.Next.After
	}
	return res
}
