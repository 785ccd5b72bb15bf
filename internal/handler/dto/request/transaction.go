package request

import (
	"library-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTransactionRequest struct {
	BookID uuid.UUID `json:"livroId" binding:"required"`
	// ignored for customers, who always buy for themselves
	CustomerID  uuid.UUID `json:"clienteId"`
	StartDate   *string   `json:"dtInicio"`
	EndDate     *string   `json:"dtFim"`
	Kind        string    `json:"tipo"`
	Status      string    `json:"status"`
	PaymentKind string    `json:"tipoPagamento" binding:"max=50"`
}

func (r *CreateTransactionRequest) ToInput() (commands.CreateTransactionInput, error) {
	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return commands.CreateTransactionInput{}, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return commands.CreateTransactionInput{}, err
	}
	return commands.CreateTransactionInput{
		BookID:      r.BookID,
		CustomerID:  r.CustomerID,
		StartDate:   start,
		EndDate:     end,
		Kind:        r.Kind,
		Status:      r.Status,
		PaymentKind: r.PaymentKind,
	}, nil
}
