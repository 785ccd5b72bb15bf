package commands

import (
	"context"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/password"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountInput struct {
	Name      string
	Email     string
	Password  string
	CPF       string
	BirthDate *time.Time
	Address   string
	Phone     string
}

// AccountPatch ignores nil and blank fields.
type AccountPatch struct {
	Name      *string
	Email     *string
	Password  *string
	CPF       *string
	BirthDate *time.Time
	Address   *string
	Phone     *string
}

// AccountCommands manages the accounts of one role. The role scopes every
// lookup, so an id of another role reads as not found. A CUSTOMER actor may
// only change or remove its own account.
type AccountCommands interface {
	Create(ctx context.Context, role account.Role, in AccountInput, actor *shared.Actor) (uuid.UUID, error)
	Update(ctx context.Context, role account.Role, id uuid.UUID, patch AccountPatch, actor shared.Actor) error
	Delete(ctx context.Context, role account.Role, id uuid.UUID, actor shared.Actor) error
}

type accountCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountCommands(uow shared.UnitOfWork, clk clock.Clock) AccountCommands {
	return &accountCommandsImpl{uow: uow, clock: clk}
}

func (uc *accountCommandsImpl) Create(ctx context.Context, role account.Role, in AccountInput, actor *shared.Actor) (uuid.UUID, error) {
	var creator *account.Creator
	if actor != nil && role != account.RoleCustomer {
		creator = &account.Creator{Email: actor.Email, Role: actor.Role}
	}
	return createAccount(ctx, uc.uow, uc.clock.Now(), role, in, creator)
}

func (uc *accountCommandsImpl) Update(ctx context.Context, role account.Role, id uuid.UUID, patch AccountPatch, actor shared.Actor) error {
	if err := checkAccountOwner(actor, id); err != nil {
		return err
	}
	profile := account.Profile{
		Name:      patch.Name,
		Email:     patch.Email,
		CPF:       patch.CPF,
		BirthDate: patch.BirthDate,
		Address:   patch.Address,
		Phone:     patch.Phone,
	}
	if patch.Password != nil && *patch.Password != "" {
		if err := account.ValidatePassword(*patch.Password); err != nil {
			return err
		}
		hash, err := password.EnsureHashed(*patch.Password)
		if err != nil {
			return err
		}
		profile.PasswordHash = &hash
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		acc, err := tx.Accounts().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, accountNotFound(role))
		}
		if acc.Role() != role {
			return accountNotFound(role)
		}
		if err := acc.ApplyProfile(profile, uc.clock.Now()); err != nil {
			return err
		}
		if err := ensureUnique(ctx, tx, acc.Identity(), acc.ID()); err != nil {
			return err
		}
		return translateDuplicate(tx.Accounts().Update(ctx, acc))
	})
}

func (uc *accountCommandsImpl) Delete(ctx context.Context, role account.Role, id uuid.UUID, actor shared.Actor) error {
	if err := checkAccountOwner(actor, id); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		acc, err := tx.Accounts().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, accountNotFound(role))
		}
		if acc.Role() != role {
			return accountNotFound(role)
		}
		err = tx.Accounts().Delete(ctx, id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrAccountReferenced
		}
		return shared.NotFoundAs(err, accountNotFound(role))
	})
}

func checkAccountOwner(actor shared.Actor, id uuid.UUID) error {
	if actor.Is(account.RoleCustomer) && actor.ID != id {
		return ErrNotOwner
	}
	return nil
}

func createAccount(ctx context.Context, uow shared.UnitOfWork, now time.Time, role account.Role, in AccountInput, creator *account.Creator) (uuid.UUID, error) {
	if err := account.ValidatePassword(in.Password); err != nil {
		return uuid.Nil, err
	}
	identity, err := account.NewIdentity(account.IdentityInput{
		Name:      in.Name,
		Email:     in.Email,
		CPF:       in.CPF,
		BirthDate: in.BirthDate,
		Address:   in.Address,
		Phone:     in.Phone,
	}, now)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := password.EnsureHashed(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	acc, err := account.NewAccount(identity, hash, role, creator, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureUnique(ctx, tx, identity, uuid.Nil); err != nil {
			return err
		}
		return translateDuplicate(tx.Accounts().Create(ctx, acc))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return acc.ID(), nil
}

// ensureUnique checks email and CPF across all roles.
func ensureUnique(ctx context.Context, tx shared.Tx, identity account.Identity, excludeID uuid.UUID) error {
	taken, err := tx.Accounts().ExistsByEmail(ctx, identity.Email.Value(), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}
	taken, err = tx.Accounts().ExistsByCPF(ctx, identity.CPF.Value(), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrCPFTaken
	}
	return nil
}
