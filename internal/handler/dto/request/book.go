package request

import (
	"library-backend/internal/domain/book"
	"library-backend/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type BookRequest struct {
	Title         string           `json:"titulo" binding:"required,max=255"`
	Author        string           `json:"autor" binding:"required,max=255"`
	PublishedOn   *string          `json:"dtPublicacao"`
	Genre         string           `json:"genero" binding:"max=100"`
	PurchasePrice decimal.Decimal  `json:"vlCompra"`
	RentalPrice   *decimal.Decimal `json:"vlAluguel"`
	CoverURL      string           `json:"capaUrl" binding:"max=500"`
	ShortSummary  string           `json:"resumoCurto" binding:"max=500"`
	Synopsis      string           `json:"sinopse"`
}

func (r *BookRequest) ToInput() (book.Input, error) {
	publishedOn, err := parseOptionalDate(r.PublishedOn)
	if err != nil {
		return book.Input{}, err
	}
	return book.Input{
		Title:         r.Title,
		Author:        r.Author,
		PublishedOn:   publishedOn,
		Genre:         r.Genre,
		PurchasePrice: r.PurchasePrice,
		RentalPrice:   r.RentalPrice,
		CoverURL:      r.CoverURL,
		ShortSummary:  r.ShortSummary,
		Synopsis:      r.Synopsis,
	}, nil
}

type UpdateBookRequest struct {
	Title         *string          `json:"titulo"`
	Author        *string          `json:"autor"`
	PublishedOn   *string          `json:"dtPublicacao"`
	Genre         *string          `json:"genero"`
	PurchasePrice *decimal.Decimal `json:"vlCompra"`
	RentalPrice   *decimal.Decimal `json:"vlAluguel"`
	CoverURL      *string          `json:"capaUrl"`
	ShortSummary  *string          `json:"resumoCurto"`
	Synopsis      *string          `json:"sinopse"`
}

func (r *UpdateBookRequest) ToPatch() (book.Patch, error) {
	publishedOn, err := parseOptionalDate(r.PublishedOn)
	if err != nil {
		return book.Patch{}, err
	}
	return book.Patch{
		Title:         patch.NonBlank(r.Title),
		Author:        patch.NonBlank(r.Author),
		PublishedOn:   publishedOn,
		Genre:         patch.NonBlank(r.Genre),
		PurchasePrice: r.PurchasePrice,
		RentalPrice:   r.RentalPrice,
		CoverURL:      patch.NonBlank(r.CoverURL),
		ShortSummary:  patch.NonBlank(r.ShortSummary),
		Synopsis:      patch.NonBlank(r.Synopsis),
	}, nil
}

type BookSearchRequest struct {
	Title  string `form:"titulo"`
	Author string `form:"autor"`
	Genre  string `form:"genero"`
}
