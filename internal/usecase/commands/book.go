package commands

import (
	"context"

	"library-backend/internal/domain/book"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookCommands interface {
	Create(ctx context.Context, in book.Input, actor shared.Actor) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch book.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookCommands(uow shared.UnitOfWork, clk clock.Clock) BookCommands {
	return &bookCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookCommandsImpl) Create(ctx context.Context, in book.Input, actor shared.Actor) (uuid.UUID, error) {
	b, err := book.NewBook(in, &book.Creator{Email: actor.Email, Role: actor.Role.String()}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateCheck(tx.Books().Create(ctx, b))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (uc *bookCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch book.Patch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookNotFound)
		}
		if err := b.ApplyPatch(patch, uc.clock.Now()); err != nil {
			return err
		}
		return translateCheck(shared.NotFoundAs(tx.Books().Update(ctx, b), shared.ErrBookNotFound))
	})
}

// Delete refuses while a transaction or review points at the book.
func (uc *bookCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Books().FindByIDForUpdate(ctx, id); err != nil {
			return shared.NotFoundAs(err, shared.ErrBookNotFound)
		}
		referenced, err := tx.Books().IsReferenced(ctx, id)
		if err != nil {
			return err
		}
		if referenced {
			return book.ErrBookReferenced
		}
		err = tx.Books().Delete(ctx, id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return book.ErrBookReferenced
		}
		return shared.NotFoundAs(err, shared.ErrBookNotFound)
	})
}
