//go:build unit

package commands_test

import (
	"context"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/infra"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"
	sharedmock "library-backend/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	now          = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	errNotFound  = infra.RepositoryError{Kind: infra.KindNotFound}
	errDBFailure = infra.RepositoryError{Kind: infra.KindDBFailure}
)

type mocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	transactions *sharedmock.MockTransactionRepository
	books        *sharedmock.MockBookRepository
	accounts     *sharedmock.MockAccountRepository
	reviews      *sharedmock.MockReviewRepository
	clock        *clock.MockClock
}

// newMocks runs every Within callback against one mocked Tx.
func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		transactions: sharedmock.NewMockTransactionRepository(ctrl),
		books:        sharedmock.NewMockBookRepository(ctrl),
		accounts:     sharedmock.NewMockAccountRepository(ctrl),
		reviews:      sharedmock.NewMockReviewRepository(ctrl),
		clock:        clock.NewMockClock(now),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Transactions().Return(m.transactions).AnyTimes()
	m.tx.EXPECT().Books().Return(m.books).AnyTimes()
	m.tx.EXPECT().Accounts().Return(m.accounts).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	return m
}

func customerActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Email: "ana@example.com", Role: account.RoleCustomer}
}

func staffActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Email: "staff@example.com", Role: account.RoleStaff}
}

func adminActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Email: "admin@example.com", Role: account.RoleAdmin}
}
