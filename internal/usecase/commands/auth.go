package commands

import (
	"context"
	"strings"

	"library-backend/internal/domain/account"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/password"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	Issue(email string, role account.Role, subjectID uuid.UUID) (string, error)
}

type LoginResult struct {
	Token  string
	Name   string
	Email  string
	Role   account.Role
	UserID uuid.UUID
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	Register(ctx context.Context, in AccountInput) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens, clock: clk}
}

// Login looks the email up across every role.
func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || rawPassword == "" {
		return nil, ErrInvalidCredentials
	}

	var acc *account.Account
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Accounts().FindByEmail(ctx, email)
		if err != nil {
			return shared.NotFoundAs(err, ErrInvalidCredentials)
		}
		acc = found
		return nil
	})
	if errs.Is(err, ErrInvalidCredentials) {
		_ = password.CompareDummy(rawPassword)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !account.VerifyCredential(acc, rawPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(acc.Email().Value(), acc.Role(), acc.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		Token:  token,
		Name:   acc.Name(),
		Email:  acc.Email().Value(),
		Role:   acc.Role(),
		UserID: acc.ID(),
	}, nil
}

// Register creates a customer account without a creator.
func (a *authCommandsImpl) Register(ctx context.Context, in AccountInput) (uuid.UUID, error) {
	return createAccount(ctx, a.uow, a.clock.Now(), account.RoleCustomer, in, nil)
}
