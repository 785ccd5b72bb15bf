package book

import (
	"strings"
	"time"
	"unicode/utf8"

	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTitleRequired  = errs.NewCategorized("title is required", errs.ErrValidation)
	ErrAuthorRequired = errs.NewCategorized("author is required", errs.ErrValidation)
	ErrFieldTooLong   = errs.NewCategorized("field exceeds maximum length", errs.ErrValidation)
	ErrNegativePrice  = errs.NewCategorized("price cannot be negative", errs.ErrValidation)
	ErrBookReferenced = errs.NewCategorized("book is referenced by transactions or reviews", errs.ErrBusinessRule)
)

const (
	maxShortText = 255
	maxSynopsis  = 5000
)

type Creator struct {
	Email string
	Role  string
}

type Book struct {
	id            uuid.UUID
	title         string
	author        string
	publishedOn   *time.Time
	genre         string
	purchasePrice decimal.Decimal
	rentalPrice   *decimal.Decimal
	coverURL      string
	shortSummary  string
	synopsis      string
	createdBy     *Creator
	createdAt     time.Time
	updatedAt     time.Time
}

type Input struct {
	Title         string
	Author        string
	PublishedOn   *time.Time
	Genre         string
	PurchasePrice decimal.Decimal
	RentalPrice   *decimal.Decimal
	CoverURL      string
	ShortSummary  string
	Synopsis      string
}

func NewBook(in Input, createdBy *Creator, now time.Time) (*Book, error) {
	b := &Book{
		id:        uuid.New(),
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}
	if err := b.assign(in); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBook(id uuid.UUID, in Input, createdBy *Creator, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:            id,
		title:         in.Title,
		author:        in.Author,
		publishedOn:   in.PublishedOn,
		genre:         in.Genre,
		purchasePrice: in.PurchasePrice,
		rentalPrice:   in.RentalPrice,
		coverURL:      in.CoverURL,
		shortSummary:  in.ShortSummary,
		synopsis:      in.Synopsis,
		createdBy:     createdBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Book) ID() uuid.UUID                  { return b.id }
func (b *Book) Title() string                  { return b.title }
func (b *Book) Author() string                 { return b.author }
func (b *Book) PublishedOn() *time.Time        { return b.publishedOn }
func (b *Book) Genre() string                  { return b.genre }
func (b *Book) PurchasePrice() decimal.Decimal { return b.purchasePrice }
func (b *Book) RentalPrice() *decimal.Decimal  { return b.rentalPrice }
func (b *Book) CoverURL() string               { return b.coverURL }
func (b *Book) ShortSummary() string           { return b.shortSummary }
func (b *Book) Synopsis() string               { return b.synopsis }
func (b *Book) CreatedBy() *Creator            { return b.createdBy }
func (b *Book) CreatedAt() time.Time           { return b.createdAt }
func (b *Book) UpdatedAt() time.Time           { return b.updatedAt }

// HasRentalPrice decides the kind of a new transaction when none is given.
func (b *Book) HasRentalPrice() bool {
	return b.rentalPrice != nil
}

func (b *Book) Input() Input {
	return Input{
		Title:         b.title,
		Author:        b.author,
		PublishedOn:   b.publishedOn,
		Genre:         b.genre,
		PurchasePrice: b.purchasePrice,
		RentalPrice:   b.rentalPrice,
		CoverURL:      b.coverURL,
		ShortSummary:  b.shortSummary,
		Synopsis:      b.synopsis,
	}
}

// Patch is a partial update; nil pointers and blank strings are ignored.
type Patch struct {
	Title         *string
	Author        *string
	PublishedOn   *time.Time
	Genre         *string
	PurchasePrice *decimal.Decimal
	RentalPrice   *decimal.Decimal
	CoverURL      *string
	ShortSummary  *string
	Synopsis      *string
}

func (b *Book) ApplyPatch(p Patch, now time.Time) error {
	in := b.Input()
	setIfPresent(&in.Title, p.Title)
	setIfPresent(&in.Author, p.Author)
	setIfPresent(&in.Genre, p.Genre)
	setIfPresent(&in.CoverURL, p.CoverURL)
	setIfPresent(&in.ShortSummary, p.ShortSummary)
	setIfPresent(&in.Synopsis, p.Synopsis)
	if p.PublishedOn != nil {
		in.PublishedOn = p.PublishedOn
	}
	if p.PurchasePrice != nil {
		in.PurchasePrice = *p.PurchasePrice
	}
	if p.RentalPrice != nil {
		in.RentalPrice = p.RentalPrice
	}

	if err := b.assign(in); err != nil {
		return err
	}
	b.updatedAt = now
	return nil
}

func (b *Book) assign(in Input) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrTitleRequired
	}
	author := strings.TrimSpace(in.Author)
	if author == "" {
		return ErrAuthorRequired
	}
	for _, s := range []string{title, author, in.Genre, in.CoverURL, in.ShortSummary} {
		if utf8.RuneCountInString(s) > maxShortText {
			return ErrFieldTooLong
		}
	}
	if utf8.RuneCountInString(in.Synopsis) > maxSynopsis {
		return ErrFieldTooLong
	}
	if in.PurchasePrice.IsNegative() {
		return ErrNegativePrice
	}
	if in.RentalPrice != nil && in.RentalPrice.IsNegative() {
		return ErrNegativePrice
	}

	b.title = title
	b.author = author
	b.publishedOn = in.PublishedOn
	b.genre = strings.TrimSpace(in.Genre)
	b.purchasePrice = in.PurchasePrice.Round(2)
	if in.RentalPrice != nil {
		rp := in.RentalPrice.Round(2)
		b.rentalPrice = &rp
	} else {
		b.rentalPrice = nil
	}
	b.coverURL = strings.TrimSpace(in.CoverURL)
	b.shortSummary = strings.TrimSpace(in.ShortSummary)
	b.synopsis = strings.TrimSpace(in.Synopsis)
	return nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = *v
	}
}
