package queries

import (
	"context"
	"strings"
	"time"

	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookView struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Author         string           `json:"author"`
	PublishedOn    *time.Time       `json:"published_on,omitempty"`
	Genre          string           `json:"genre"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	RentalPrice    *decimal.Decimal `json:"rental_price,omitempty"`
	CoverURL       string           `json:"cover_url"`
	ShortSummary   string           `json:"short_summary"`
	Synopsis       string           `json:"synopsis"`
	CreatedByEmail *string          `json:"created_by_email,omitempty"`
	CreatedByRole  *string          `json:"created_by_role,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// BookFilter: title and author match case-insensitive substrings, genre
// matches exactly ignoring case. Empty fields do not filter.
type BookFilter struct {
	Title  string
	Author string
	Genre  string
}

func (f BookFilter) Normalize() BookFilter {
	return BookFilter{
		Title:  strings.TrimSpace(f.Title),
		Author: strings.TrimSpace(f.Author),
		Genre:  strings.TrimSpace(f.Genre),
	}
}

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, filter BookFilter) ([]*BookView, error)
}

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context) ([]*BookView, error)
	Search(ctx context.Context, filter BookFilter) ([]*BookView, error)
}

type bookQueriesImpl struct {
	store BookReadStore
}

func NewBookQueries(store BookReadStore) BookQueries {
	return &bookQueriesImpl{store: store}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBookNotFound)
	}
	return v, nil
}

func (q *bookQueriesImpl) List(ctx context.Context) ([]*BookView, error) {
	return q.store.List(ctx, BookFilter{})
}

func (q *bookQueriesImpl) Search(ctx context.Context, filter BookFilter) ([]*BookView, error) {
	return q.store.List(ctx, filter.Normalize())
}
