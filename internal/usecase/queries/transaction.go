package queries

import (
	"context"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/domain/transaction"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransactionView struct {
	ID           uuid.UUID  `json:"id"`
	BookID       uuid.UUID  `json:"book_id"`
	BookTitle    string     `json:"book_title"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	PaymentKind  string     `json:"payment_kind"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TransactionFilter struct {
	CustomerID *uuid.UUID
	Status     *transaction.Status
}

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	List(ctx context.Context, filter TransactionFilter, after *Keyset, limit int) ([]*TransactionView, error)
}

type TransactionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	List(ctx context.Context, cursor *Cursor, limit int) (Page[*TransactionView], error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) (Page[*TransactionView], error)
	ListByStatus(ctx context.Context, status string, cursor *Cursor, limit int) (Page[*TransactionView], error)
	ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) (Page[*TransactionView], error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TransactionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrTransactionNotFound)
	}
	return v, nil
}

func (q *transactionQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) (Page[*TransactionView], error) {
	return q.list(ctx, TransactionFilter{}, cursor, limit)
}

func (q *transactionQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) (Page[*TransactionView], error) {
	return q.list(ctx, TransactionFilter{CustomerID: &customerID}, cursor, limit)
}

func (q *transactionQueriesImpl) ListByStatus(ctx context.Context, status string, cursor *Cursor, limit int) (Page[*TransactionView], error) {
	s, err := transaction.ParseStatus(status)
	if err != nil {
		return Page[*TransactionView]{}, err
	}
	return q.list(ctx, TransactionFilter{Status: &s}, cursor, limit)
}

func (q *transactionQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) (Page[*TransactionView], error) {
	if !actor.Is(account.RoleCustomer) {
		return Page[*TransactionView]{}, ErrCustomersOnly
	}
	return q.ListByCustomer(ctx, actor.ID, cursor, limit)
}

func (q *transactionQueriesImpl) list(ctx context.Context, filter TransactionFilter, cursor *Cursor, limit int) (Page[*TransactionView], error) {
	return paginate(cursor, limit,
		func(v *TransactionView) Keyset { return Keyset{CreatedAt: v.CreatedAt, ID: v.ID} },
		func(after *Keyset, n int) ([]*TransactionView, error) {
			return q.store.List(ctx, filter, after, n)
		},
	)
}
