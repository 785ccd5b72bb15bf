package request

import (
	"library-backend/internal/pkg/patch"
	"library-backend/internal/usecase/commands"
)

type AccountRequest struct {
	Name      string  `json:"nome" binding:"required,max=255"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Password  string  `json:"senha" binding:"required"`
	CPF       string  `json:"cpf" binding:"required"`
	BirthDate *string `json:"dtNascimento"`
	Address   string  `json:"endereco" binding:"max=255"`
	Phone     string  `json:"telefone" binding:"max=20"`
}

func (r *AccountRequest) ToInput() (commands.AccountInput, error) {
	birthDate, err := parseOptionalDate(r.BirthDate)
	if err != nil {
		return commands.AccountInput{}, err
	}
	return commands.AccountInput{
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		CPF:       r.CPF,
		BirthDate: birthDate,
		Address:   r.Address,
		Phone:     r.Phone,
	}, nil
}

// UpdateAccountRequest: omitted or blank fields keep their stored value.
type UpdateAccountRequest struct {
	Name      *string `json:"nome"`
	Email     *string `json:"email"`
	Password  *string `json:"senha"`
	CPF       *string `json:"cpf"`
	BirthDate *string `json:"dtNascimento"`
	Address   *string `json:"endereco"`
	Phone     *string `json:"telefone"`
}

func (r *UpdateAccountRequest) ToPatch() (commands.AccountPatch, error) {
	birthDate, err := parseOptionalDate(r.BirthDate)
	if err != nil {
		return commands.AccountPatch{}, err
	}
	return commands.AccountPatch{
		Name:      patch.NonBlank(r.Name),
		Email:     patch.NonBlank(r.Email),
		Password:  patch.NonBlank(r.Password),
		CPF:       patch.NonBlank(r.CPF),
		BirthDate: birthDate,
		Address:   patch.NonBlank(r.Address),
		Phone:     patch.NonBlank(r.Phone),
	}, nil
}
