package response

import (
	"time"

	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"nome"`
	Email          string    `json:"email"`
	CPF            string    `json:"cpf"`
	BirthDate      *string   `json:"dtNascimento"`
	Address        string    `json:"endereco"`
	Phone          string    `json:"telefone"`
	Role           string    `json:"role"`
	CreatedByEmail *string   `json:"createdByEmail,omitempty"`
	CreatedByRole  *string   `json:"createdByRole,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromAccountView(v *queries.AccountView) *AccountResponse {
	res := &AccountResponse{}
	mustCopy(res, v)
	return res
}

func FromAccountViews(views []*queries.AccountView) []*AccountResponse {
	res := make([]*AccountResponse, 0, len(views))
	mustCopy(&res, views)
	return res
}
