package readstore

import (
	"context"
	"log/slog"

	"library-backend/internal/infra"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/pgconv"
	"library-backend/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookReadStore(dbtx db.DBTX, logger *slog.Logger) *BookReadStore {
	return &BookReadStore{db: dbtx, logger: logger}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	sql, args, err := bookViewQuery().Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build book view query", err)
	}
	v, err := scanBookView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to get book view by id", err)
	}
	return v, nil
}

func (r *BookReadStore) List(ctx context.Context, filter queries.BookFilter) ([]*queries.BookView, error) {
	sql, args, err := BookListQuery(filter).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build book list query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list books", err)
	}
	defer rows.Close()

	var result []*queries.BookView
	for rows.Next() {
		v, err := scanBookView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr(r.logger, "failed to scan book view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to iterate books", err)
	}
	return result, nil
}

func BookListQuery(filter queries.BookFilter) *goqu.SelectDataset {
	q := bookViewQuery()
	if filter.Title != "" {
		q = q.Where(goqu.C("title").ILike(containsPattern(filter.Title)))
	}
	if filter.Author != "" {
		q = q.Where(goqu.C("author").ILike(containsPattern(filter.Author)))
	}
	if filter.Genre != "" {
		q = q.Where(goqu.C("genre").ILike(escapeLike(filter.Genre)))
	}
	return q.Order(goqu.C("title").Asc(), goqu.C("id").Asc())
}

func bookViewQuery() *goqu.SelectDataset {
	return db.From("books").Select(
		"id", "title", "author", "published_on", "genre", "purchase_price", "rental_price",
		"cover_url", "short_summary", "synopsis", "created_by_email", "created_by_role",
		"created_at", "updated_at",
	)
}

func scanBookView(row pgx.Row) (*queries.BookView, error) {
	var (
		v                               queries.BookView
		publishedOn                     pgtype.Date
		genre, cover, summary, synopsis pgtype.Text
		rental                          decimal.NullDecimal
		cbEmail, cbRole                 pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Title, &v.Author, &publishedOn, &genre, &v.PurchasePrice, &rental,
		&cover, &summary, &synopsis, &cbEmail, &cbRole, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.PublishedOn = pgconv.DatePtrFromPgtype(publishedOn)
	v.Genre = pgconv.StringFromPgtype(genre)
	if rental.Valid {
		rp := rental.Decimal
		v.RentalPrice = &rp
	}
	v.CoverURL = pgconv.StringFromPgtype(cover)
	v.ShortSummary = pgconv.StringFromPgtype(summary)
	v.Synopsis = pgconv.StringFromPgtype(synopsis)
	v.CreatedByEmail = pgconv.StringPtrFromPgtype(cbEmail)
	v.CreatedByRole = pgconv.StringPtrFromPgtype(cbRole)
	return &v, nil
}
