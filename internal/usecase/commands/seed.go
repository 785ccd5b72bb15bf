package commands

import (
	"context"
	"strings"

	"library-backend/internal/domain/account"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// SeedAccount is one privileged account to provision on startup.
type SeedAccount struct {
	Role  account.Role
	Input AccountInput
}

// AccountSeeder provisions the first ADMIN and STAFF accounts, which cannot
// be created through the API without an existing one. Running it again is a
// no-op for every email already registered.
type AccountSeeder interface {
	Seed(ctx context.Context, accounts []SeedAccount) (created int, err error)
}

type accountSeederImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountSeeder(uow shared.UnitOfWork, clk clock.Clock) AccountSeeder {
	return &accountSeederImpl{uow: uow, clock: clk}
}

func (s *accountSeederImpl) Seed(ctx context.Context, accounts []SeedAccount) (int, error) {
	created := 0
	for _, sa := range accounts {
		ok, err := s.seedOne(ctx, sa)
		if err != nil {
			return created, errs.Wrapf(err, "seed %s account %s", sa.Role, sa.Input.Email)
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (s *accountSeederImpl) seedOne(ctx context.Context, sa SeedAccount) (bool, error) {
	if strings.TrimSpace(sa.Input.Email) == "" {
		return false, nil
	}
	email, err := account.NewEmail(sa.Input.Email)
	if err != nil {
		return false, err
	}

	var exists bool
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		exists, err = tx.Accounts().ExistsByEmail(ctx, email.Value(), uuid.Nil)
		return err
	})
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = createAccount(ctx, s.uow, s.clock.Now(), sa.Role, sa.Input, nil)
	// another instance may have seeded between the check and the insert
	if errs.Is(err, ErrEmailTaken) {
		return false, nil
	}
	return err == nil, err
}
