package queries

import (
	"context"
	"time"

	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewView struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	BookID       uuid.UUID       `json:"book_id"`
	BookTitle    string          `json:"book_title"`
	Rating       decimal.Decimal `json:"rating"`
	Comment      string          `json:"comment"`
	ReviewedOn   time.Time       `json:"reviewed_on"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ReviewFilter struct {
	BookID     *uuid.UUID
	CustomerID *uuid.UUID
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	List(ctx context.Context, filter ReviewFilter) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	List(ctx context.Context) ([]*ReviewView, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]*ReviewView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrReviewNotFound)
	}
	return rv, nil
}

func (q *reviewQueriesImpl) List(ctx context.Context) ([]*ReviewView, error) {
	return q.store.List(ctx, ReviewFilter{})
}

func (q *reviewQueriesImpl) ListByBook(ctx context.Context, bookID uuid.UUID) ([]*ReviewView, error) {
	return q.store.List(ctx, ReviewFilter{BookID: &bookID})
}

func (q *reviewQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReviewView, error) {
	return q.store.List(ctx, ReviewFilter{CustomerID: &customerID})
}
