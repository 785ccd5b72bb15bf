package repository

import (
	"context"
	"log/slog"
	"time"

	"library-backend/internal/domain/book"
	"library-backend/internal/infra"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const booksTable = "books"

var bookColumns = []any{
	"id", "title", "author", "published_on", "genre", "purchase_price", "rental_price",
	"cover_url", "short_summary", "synopsis", "created_by_email", "created_by_role",
	"created_at", "updated_at",
}

type BookRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookRepository(dbtx db.DBTX, logger *slog.Logger) *BookRepository {
	return &BookRepository{db: dbtx, logger: logger}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	rec := bookRecord(b)
	rec["id"] = b.ID()
	rec["created_at"] = b.CreatedAt()
	if cb := b.CreatedBy(); cb != nil {
		rec["created_by_email"] = cb.Email
		rec["created_by_role"] = cb.Role
	}

	if err := exec(ctx, r.db, db.Insert(booksTable).Rows(rec)); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create book", err)
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	q := db.Update(booksTable).Set(bookRecord(b)).Where(goqu.C("id").Eq(b.ID()))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update book", err)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := db.Delete(booksTable).Where(goqu.C("id").Eq(id))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete book", err)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return r.findOne(ctx, db.From(booksTable).Select(bookColumns...).Where(goqu.C("id").Eq(id)))
}

func (r *BookRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return r.findOne(ctx, db.From(booksTable).Select(bookColumns...).Where(goqu.C("id").Eq(id)).ForUpdate(exp.Wait))
}

func (r *BookRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	q := db.From(transactionsTable).Select(goqu.L("1")).Where(goqu.C("book_id").Eq(id)).
		UnionAll(db.From(reviewsTable).Select(goqu.L("1")).Where(goqu.C("book_id").Eq(id))).
		Limit(1)
	found, err := exists(ctx, r.db, q)
	if err != nil {
		return false, infra.ClassifyPgErr(r.logger, "failed to check book references", err)
	}
	return found, nil
}

func (r *BookRepository) findOne(ctx context.Context, q db.Builder) (*book.Book, error) {
	sql, args, err := q.ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build book query", err)
	}
	b, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find book", err)
	}
	return b, nil
}

func bookRecord(b *book.Book) goqu.Record {
	return goqu.Record{
		"title":          b.Title(),
		"author":         b.Author(),
		"published_on":   nullableDate(b.PublishedOn()),
		"genre":          pgconv.NullIfEmpty(b.Genre()),
		"purchase_price": b.PurchasePrice(),
		"rental_price":   nullableDecimal(b.RentalPrice()),
		"cover_url":      pgconv.NullIfEmpty(b.CoverURL()),
		"short_summary":  pgconv.NullIfEmpty(b.ShortSummary()),
		"synopsis":       pgconv.NullIfEmpty(b.Synopsis()),
		"updated_at":     b.UpdatedAt(),
	}
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var (
		id                              uuid.UUID
		title, author                   string
		publishedOn                     pgtype.Date
		genre, cover, summary, synopsis pgtype.Text
		purchase                        decimal.Decimal
		rental                          decimal.NullDecimal
		cbEmail, cbRole                 pgtype.Text
		createdAt, updatedAt            time.Time
	)
	if err := row.Scan(&id, &title, &author, &publishedOn, &genre, &purchase, &rental,
		&cover, &summary, &synopsis, &cbEmail, &cbRole, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	in := book.Input{
		Title:         title,
		Author:        author,
		PublishedOn:   pgconv.DatePtrFromPgtype(publishedOn),
		Genre:         pgconv.StringFromPgtype(genre),
		PurchasePrice: purchase,
		RentalPrice:   decimalPtr(rental),
		CoverURL:      pgconv.StringFromPgtype(cover),
		ShortSummary:  pgconv.StringFromPgtype(summary),
		Synopsis:      pgconv.StringFromPgtype(synopsis),
	}
	var createdBy *book.Creator
	if cbEmail.Valid {
		createdBy = &book.Creator{Email: cbEmail.String, Role: pgconv.StringFromPgtype(cbRole)}
	}
	return book.ReconstructBook(id, in, createdBy, createdAt, updatedAt), nil
}
