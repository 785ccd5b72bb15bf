package response

import (
	"library-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token  string    `json:"token"`
	Name   string    `json:"nome"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	UserID uuid.UUID `json:"userId"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:  r.Token,
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role.String(),
		UserID: r.UserID,
	}
}
