//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"library-backend/internal/domain/transaction"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/shared"
	"library-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransactionCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("customer creates for itself and kind is inferred", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		actor := customerActor()
		b := builder.NewBookBuilder().MustBuildDomain()
		customer := builder.NewAccountBuilder().With(func(a *builder.AccountBuilder) { a.ID = actor.ID }).MustBuildDomain()

		m.books.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		m.accounts.EXPECT().FindByID(ctx, actor.ID).Return(customer, nil)
		var created *transaction.Transaction
		m.transactions.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *transaction.Transaction) error {
				created = tr
				return nil
			})

		id, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: b.ID(), Kind: "unknown"}, actor)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, actor.ID, created.CustomerID())
		assert.Equal(t, transaction.KindRental, created.Kind())
		assert.Equal(t, transaction.StatusPending, created.Status())
		assert.Equal(t, builder.Date(2024, time.March, 15), created.StartDate())
	})

	t.Run("purchase of a book without rental price is finished", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		actor := staffActor()
		b := builder.NewBookBuilder().WithoutRentalPrice().MustBuildDomain()
		customer := builder.NewAccountBuilder().MustBuildDomain()

		m.books.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		m.accounts.EXPECT().FindByID(ctx, customer.ID()).Return(customer, nil)
		m.transactions.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *transaction.Transaction) error {
				assert.Equal(t, transaction.KindPurchase, tr.Kind())
				assert.Equal(t, transaction.StatusFinished, tr.Status())
				require.NotNil(t, tr.EndDate())
				assert.Equal(t, builder.Date(2024, time.March, 15), *tr.EndDate())
				return nil
			})

		_, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: b.ID(), CustomerID: customer.ID(), Status: "pendente"}, actor)
		require.NoError(t, err)
	})

	t.Run("customer cannot create for another customer", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		_, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: uuid.New(), CustomerID: uuid.New()}, customerActor())
		assert.True(t, errs.Is(err, commands.ErrNotOwner))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("end date before start date is rejected before insert", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		b := builder.NewBookBuilder().WithoutRentalPrice().MustBuildDomain()
		customer := builder.NewAccountBuilder().MustBuildDomain()
		start := builder.Date(2024, time.March, 10)
		end := builder.Date(2024, time.March, 1)

		m.books.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		m.accounts.EXPECT().FindByID(ctx, customer.ID()).Return(customer, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := commands.NewTransactionCommands(m.uow, m.clock).Create(ctx, commands.CreateTransactionInput{
			BookID: b.ID(), CustomerID: customer.ID(), StartDate: &start, EndDate: &end,
		}, staffActor())
		assert.True(t, errs.Is(err, transaction.ErrEndBeforeStart))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("check violation from the database is a validation error", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		b := builder.NewBookBuilder().MustBuildDomain()
		customer := builder.NewAccountBuilder().MustBuildDomain()

		m.books.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		m.accounts.EXPECT().FindByID(ctx, customer.ID()).Return(customer, nil)
		m.transactions.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindCheckViolated, Constraint: "transactions_kind_check"})

		_, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: b.ID(), CustomerID: customer.ID()}, staffActor())
		assert.True(t, errs.Is(err, commands.ErrConstraintViolated))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		_, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: uuid.New(), Status: "ARCHIVED"}, customerActor())
		assert.True(t, errs.Is(err, transaction.ErrInvalidStatus))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("missing book", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		m.books.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, errNotFound)

		_, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: uuid.New()}, customerActor())
		assert.True(t, errs.Is(err, shared.ErrBookNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("referenced account is not a customer", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		b := builder.NewBookBuilder().MustBuildDomain()
		staff := builder.NewAccountBuilder().AsStaff().MustBuildDomain()

		m.books.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		m.accounts.EXPECT().FindByID(ctx, staff.ID()).Return(staff, nil)

		_, err := commands.NewTransactionCommands(m.uow, m.clock).
			Create(ctx, commands.CreateTransactionInput{BookID: b.ID(), CustomerID: staff.ID()}, adminActor())
		assert.True(t, errs.Is(err, shared.ErrCustomerNotFound))
	})
}

func TestTransactionCommands_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		from      transaction.Status
		to        string
		expectErr error
	}{
		{name: "PENDING to IN_PROGRESS", from: transaction.StatusPending, to: "IN_PROGRESS"},
		{name: "Portuguese alias", from: transaction.StatusInProgress, to: "finalizada"},
		{name: "IN_PROGRESS to PENDING fails", from: transaction.StatusInProgress, to: "PENDING", expectErr: errs.ErrInvalidTransition},
		{name: "terminal state fails", from: transaction.StatusCancelled, to: "IN_PROGRESS", expectErr: errs.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMocks(gomock.NewController(t))
			tr := builder.NewTransactionBuilder().WithStatus(tc.from).BuildDomain()
			m.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID()).Return(tr, nil)
			if tc.expectErr == nil {
				m.transactions.EXPECT().Update(ctx, tr).Return(nil)
			}

			err := commands.NewTransactionCommands(m.uow, m.clock).ChangeStatus(ctx, tr.ID(), tc.to)
			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr))
				assert.Equal(t, tc.from, tr.Status())
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("unknown status never touches the database", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		err := commands.NewTransactionCommands(m.uow, m.clock).ChangeStatus(ctx, uuid.New(), "ARCHIVED")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("missing transaction", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		m.transactions.EXPECT().FindByIDForUpdate(ctx, gomock.Any()).Return(nil, errNotFound)
		err := commands.NewTransactionCommands(m.uow, m.clock).ChangeStatus(ctx, uuid.New(), "CANCELLED")
		assert.True(t, errs.Is(err, shared.ErrTransactionNotFound))
	})
}

func TestTransactionCommands_FinalizeThenRenew(t *testing.T) {
	ctx := context.Background()
	m := newMocks(gomock.NewController(t))
	actor := customerActor()
	tr := builder.NewTransactionBuilder().With(func(b *builder.TransactionBuilder) { b.CustomerID = actor.ID }).BuildDomain()
	uc := commands.NewTransactionCommands(m.uow, m.clock)

	m.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID()).Return(tr, nil).Times(2)
	m.transactions.EXPECT().Update(ctx, tr).Return(nil).Times(2)

	require.NoError(t, uc.Finalize(ctx, tr.ID()))
	require.NotNil(t, tr.EndDate())
	assert.Equal(t, builder.Date(2024, time.January, 31), *tr.EndDate())
	assert.Equal(t, transaction.StatusFinished, tr.Status())

	require.NoError(t, uc.Renew(ctx, tr.ID(), 10, actor))
	assert.Equal(t, builder.Date(2024, time.February, 10), *tr.EndDate())
	assert.Equal(t, transaction.StatusPending, tr.Status())
	assert.Equal(t, now, tr.UpdatedAt())
}

func TestTransactionCommands_Renew(t *testing.T) {
	ctx := context.Background()

	t.Run("customer cannot renew a transaction of someone else", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		tr := builder.NewTransactionBuilder().BuildDomain()
		m.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID()).Return(tr, nil)

		err := commands.NewTransactionCommands(m.uow, m.clock).Renew(ctx, tr.ID(), 0, customerActor())
		assert.True(t, errs.Is(err, commands.ErrNotOwner))
		assert.Nil(t, tr.EndDate())
	})

	t.Run("staff renews any rental with the default period", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		tr := builder.NewTransactionBuilder().BuildDomain()
		m.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID()).Return(tr, nil)
		m.transactions.EXPECT().Update(ctx, tr).Return(nil)

		require.NoError(t, commands.NewTransactionCommands(m.uow, m.clock).Renew(ctx, tr.ID(), 0, staffActor()))
		assert.Equal(t, builder.Date(2024, time.February, 15), *tr.EndDate())
	})

	t.Run("purchase cannot be renewed", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		tr := builder.NewTransactionBuilder().AsPurchase().BuildDomain()
		m.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID()).Return(tr, nil)

		err := commands.NewTransactionCommands(m.uow, m.clock).Renew(ctx, tr.ID(), 5, staffActor())
		assert.True(t, errs.Is(err, transaction.ErrRenewalRestricted))
		assert.True(t, errs.Is(err, errs.ErrBusinessRule))
	})

	t.Run("more than a year is rejected without saving", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		tr := builder.NewTransactionBuilder().BuildDomain()
		m.transactions.EXPECT().FindByIDForUpdate(ctx, tr.ID()).Return(tr, nil)

		err := commands.NewTransactionCommands(m.uow, m.clock).Renew(ctx, tr.ID(), transaction.MaxRenewalDays+1, staffActor())
		assert.True(t, errs.Is(err, transaction.ErrRenewalTooLong))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestTransactionCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		id := uuid.New()
		m.transactions.EXPECT().Delete(ctx, id).Return(nil)
		require.NoError(t, commands.NewTransactionCommands(m.uow, m.clock).Delete(ctx, id))
	})

	t.Run("missing transaction", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		m.transactions.EXPECT().Delete(ctx, gomock.Any()).Return(errNotFound)
		err := commands.NewTransactionCommands(m.uow, m.clock).Delete(ctx, uuid.New())
		assert.True(t, errs.Is(err, shared.ErrTransactionNotFound))
	})

	t.Run("database failure passes through", func(t *testing.T) {
		m := newMocks(gomock.NewController(t))
		m.transactions.EXPECT().Delete(ctx, gomock.Any()).Return(errDBFailure)
		err := commands.NewTransactionCommands(m.uow, m.clock).Delete(ctx, uuid.New())
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})
}
