//go:build unit || e2e

package builder

import (
	"time"

	"library-backend/internal/domain/book"
	reqdto "library-backend/internal/handler/dto/request"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookBuilder struct {
	ID            uuid.UUID
	Title         string
	Author        string
	PublishedOn   *time.Time
	Genre         string
	PurchasePrice decimal.Decimal
	RentalPrice   *decimal.Decimal
	CoverURL      string
	ShortSummary  string
	Synopsis      string
	CreatedBy     *book.Creator
	Now           time.Time
}

func NewBookBuilder() *BookBuilder {
	published := Date(1899, time.January, 1)
	rental := decimal.RequireFromString("9.90")
	return &BookBuilder{
		ID:            uuid.New(),
		Title:         "Dom Casmurro",
		Author:        "Machado de Assis",
		PublishedOn:   &published,
		Genre:         "Romance",
		PurchasePrice: decimal.RequireFromString("39.90"),
		RentalPrice:   &rental,
		CoverURL:      "https://example.com/dom-casmurro.jpg",
		ShortSummary:  "Bentinho e Capitu",
		Synopsis:      "Narrado em primeira pessoa por Bento Santiago.",
		CreatedBy:     &book.Creator{Email: "staff@example.com", Role: "STAFF"},
		Now:           time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) WithoutRentalPrice() *BookBuilder {
	b.RentalPrice = nil
	return b
}

func (b *BookBuilder) Input() book.Input {
	return book.Input{
		Title:         b.Title,
		Author:        b.Author,
		PublishedOn:   b.PublishedOn,
		Genre:         b.Genre,
		PurchasePrice: b.PurchasePrice,
		RentalPrice:   b.RentalPrice,
		CoverURL:      b.CoverURL,
		ShortSummary:  b.ShortSummary,
		Synopsis:      b.Synopsis,
	}
}

func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.Input(), b.CreatedBy, b.Now)
}

// MustBuildDomain keeps the builder's ID.
func (b *BookBuilder) MustBuildDomain() *book.Book {
	return book.ReconstructBook(b.ID, b.Input(), b.CreatedBy, b.Now, b.Now)
}

func (b *BookBuilder) BuildRequestDTO() reqdto.BookRequest {
	req := reqdto.BookRequest{
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		PurchasePrice: b.PurchasePrice,
		RentalPrice:   b.RentalPrice,
		CoverURL:      b.CoverURL,
		ShortSummary:  b.ShortSummary,
		Synopsis:      b.Synopsis,
	}
	if b.PublishedOn != nil {
		s := b.PublishedOn.Format(time.DateOnly)
		req.PublishedOn = &s
	}
	return req
}

func (b *BookBuilder) BuildView() *queries.BookView {
	v := &queries.BookView{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedOn:   b.PublishedOn,
		Genre:         b.Genre,
		PurchasePrice: b.PurchasePrice,
		RentalPrice:   b.RentalPrice,
		CoverURL:      b.CoverURL,
		ShortSummary:  b.ShortSummary,
		Synopsis:      b.Synopsis,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
	if b.CreatedBy != nil {
		email := b.CreatedBy.Email
		role := b.CreatedBy.Role
		v.CreatedByEmail = &email
		v.CreatedByRole = &role
	}
	return v
}
