package commands

import (
	"context"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/domain/transaction"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTransactionInput struct {
	BookID     uuid.UUID
	CustomerID uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	// Kind and Status accept English and Portuguese names. An unknown kind
	// is inferred from the book; an unknown status is rejected.
	Kind        string
	Status      string
	PaymentKind string
}

type TransactionCommands interface {
	Create(ctx context.Context, in CreateTransactionInput, actor shared.Actor) (uuid.UUID, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) error
	Finalize(ctx context.Context, id uuid.UUID) error
	Renew(ctx context.Context, id uuid.UUID, extraDays int, actor shared.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTransactionCommands(uow shared.UnitOfWork, clk clock.Clock) TransactionCommands {
	return &transactionCommandsImpl{uow: uow, clock: clk}
}

func (uc *transactionCommandsImpl) Create(ctx context.Context, in CreateTransactionInput, actor shared.Actor) (uuid.UUID, error) {
	customerID := in.CustomerID
	if actor.Is(account.RoleCustomer) {
		if customerID != uuid.Nil && customerID != actor.ID {
			return uuid.Nil, ErrNotOwner
		}
		customerID = actor.ID
	}

	draft := transaction.Draft{
		BookID:      in.BookID,
		CustomerID:  customerID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		PaymentKind: in.PaymentKind,
	}
	if k, ok := transaction.ParseKind(in.Kind); ok {
		draft.Kind = &k
	}
	if in.Status != "" {
		st, err := transaction.ParseStatus(in.Status)
		if err != nil {
			return uuid.Nil, err
		}
		draft.Status = &st
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindByID(ctx, draft.BookID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookNotFound)
		}
		customer, err := tx.Accounts().FindByID(ctx, draft.CustomerID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrCustomerNotFound)
		}
		if !account.HasRole(customer, account.RoleCustomer) {
			return shared.ErrCustomerNotFound
		}

		now := uc.clock.Now()
		t, err := transaction.New(draft, transaction.StepContext{Today: now, BookHasRentalPrice: b.HasRentalPrice()}, now)
		if err != nil {
			return err
		}
		if err := tx.Transactions().Create(ctx, t); err != nil {
			return translateCheck(err)
		}
		createdID = t.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *transactionCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) error {
	to, err := transaction.ParseStatus(status)
	if err != nil {
		return err
	}
	return uc.modify(ctx, id, func(t *transaction.Transaction, now time.Time) error {
		return t.ChangeStatus(to, now)
	})
}

func (uc *transactionCommandsImpl) Finalize(ctx context.Context, id uuid.UUID) error {
	return uc.modify(ctx, id, func(t *transaction.Transaction, now time.Time) error {
		t.Finalize(now)
		return nil
	})
}

func (uc *transactionCommandsImpl) Renew(ctx context.Context, id uuid.UUID, extraDays int, actor shared.Actor) error {
	return uc.modify(ctx, id, func(t *transaction.Transaction, now time.Time) error {
		if actor.Is(account.RoleCustomer) && !t.BelongsTo(actor.ID) {
			return ErrNotOwner
		}
		return t.Renew(extraDays, now)
	})
}

func (uc *transactionCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.NotFoundAs(tx.Transactions().Delete(ctx, id), shared.ErrTransactionNotFound)
	})
}

// modify locks the row, applies fn and persists the result.
func (uc *transactionCommandsImpl) modify(ctx context.Context, id uuid.UUID, fn func(*transaction.Transaction, time.Time) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Transactions().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrTransactionNotFound)
		}
		if err := fn(t, uc.clock.Now()); err != nil {
			return err
		}
		return translateCheck(shared.NotFoundAs(tx.Transactions().Update(ctx, t), shared.ErrTransactionNotFound))
	})
}
