//go:build unit || e2e

package builder

import (
	"time"

	"library-backend/internal/domain/account"
	reqdto "library-backend/internal/handler/dto/request"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	CPF          string
	BirthDate    *time.Time
	Address      string
	Phone        string
	Role         string
	CreatedBy    *account.Creator
	Now          time.Time
}

func NewAccountBuilder() *AccountBuilder {
	birth := Date(1990, time.May, 20)
	return &AccountBuilder{
		ID:           uuid.New(),
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		Password:     "password123",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuN2kvQ5TNxh3q5nHfHpmfL3nAFCHkQeS",
		CPF:          "123.456.789-09",
		BirthDate:    &birth,
		Address:      "Rua das Flores, 10",
		Phone:        "(11) 98765-4321",
		Role:         "CUSTOMER",
		Now:          time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

func (a *AccountBuilder) WithEmail(email string) *AccountBuilder {
	a.Email = email
	return a
}

func (a *AccountBuilder) WithRole(role string) *AccountBuilder {
	a.Role = role
	return a
}

func (a *AccountBuilder) AsStaff() *AccountBuilder {
	a.Role = "STAFF"
	a.CreatedBy = &account.Creator{Email: "admin@example.com", Role: account.RoleAdmin}
	return a
}

func (a *AccountBuilder) IdentityInput() account.IdentityInput {
	return account.IdentityInput{
		Name:      a.Name,
		Email:     a.Email,
		CPF:       a.CPF,
		BirthDate: a.BirthDate,
		Address:   a.Address,
		Phone:     a.Phone,
	}
}

func (a *AccountBuilder) BuildDomain() (*account.Account, error) {
	identity, err := account.NewIdentity(a.IdentityInput(), a.Now)
	if err != nil {
		return nil, err
	}
	role, err := account.NewRole(a.Role)
	if err != nil {
		return nil, err
	}
	return account.NewAccount(identity, a.PasswordHash, role, a.CreatedBy, a.Now)
}

// MustBuildDomain keeps the builder's ID.
func (a *AccountBuilder) MustBuildDomain() *account.Account {
	identity, err := account.NewIdentity(a.IdentityInput(), a.Now)
	if err != nil {
		panic(err)
	}
	role, err := account.NewRole(a.Role)
	if err != nil {
		panic(err)
	}
	return account.ReconstructAccount(a.ID, identity, a.PasswordHash, role, a.CreatedBy, a.Now, a.Now)
}

func (a *AccountBuilder) BuildRequestDTO() reqdto.AccountRequest {
	req := reqdto.AccountRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		CPF:      a.CPF,
		Address:  a.Address,
		Phone:    a.Phone,
	}
	if a.BirthDate != nil {
		s := a.BirthDate.Format(time.DateOnly)
		req.BirthDate = &s
	}
	return req
}

func (a *AccountBuilder) BuildView() *queries.AccountView {
	v := &queries.AccountView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CPF:       "12345678909",
		BirthDate: a.BirthDate,
		Address:   a.Address,
		Phone:     "11987654321",
		Role:      a.Role,
		CreatedAt: a.Now,
		UpdatedAt: a.Now,
	}
	if a.CreatedBy != nil {
		email := a.CreatedBy.Email
		role := a.CreatedBy.Role.String()
		v.CreatedByEmail = &email
		v.CreatedByRole = &role
	}
	return v
}
