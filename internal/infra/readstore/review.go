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
)

type ReviewReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReviewReadStore(dbtx db.DBTX, logger *slog.Logger) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx, logger: logger}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	sql, args, err := reviewViewQuery().Where(goqu.I("r.id").Eq(id)).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build review view query", err)
	}
	v, err := scanReviewView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to get review view by id", err)
	}
	return v, nil
}

func (r *ReviewReadStore) List(ctx context.Context, filter queries.ReviewFilter) ([]*queries.ReviewView, error) {
	sql, args, err := ReviewListQuery(filter).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build review list query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		v, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr(r.logger, "failed to scan review view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to iterate reviews", err)
	}
	return result, nil
}

func ReviewListQuery(filter queries.ReviewFilter) *goqu.SelectDataset {
	q := reviewViewQuery()
	if filter.BookID != nil {
		q = q.Where(goqu.I("r.book_id").Eq(*filter.BookID))
	}
	if filter.CustomerID != nil {
		q = q.Where(goqu.I("r.customer_id").Eq(*filter.CustomerID))
	}
	return q.Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc())
}

func reviewViewQuery() *goqu.SelectDataset {
	return db.From(goqu.T("reviews").As("r")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("r.book_id")))).
		Join(goqu.T("accounts").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("r.customer_id")))).
		Select(
			"r.id", "r.customer_id", "a.name", "r.book_id", "b.title",
			"r.rating", "r.comment", "r.reviewed_on", "r.created_at", "r.updated_at",
		)
}

func scanReviewView(row pgx.Row) (*queries.ReviewView, error) {
	var (
		v          queries.ReviewView
		comment    pgtype.Text
		reviewedOn pgtype.Date
	)
	if err := row.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &v.BookID, &v.BookTitle,
		&v.Rating, &comment, &reviewedOn, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Comment = pgconv.StringFromPgtype(comment)
	v.ReviewedOn = pgconv.DateFromPgtype(reviewedOn)
	return &v, nil
}
