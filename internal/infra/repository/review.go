package repository

import (
	"context"
	"log/slog"
	"time"

	"library-backend/internal/domain/review"
	"library-backend/internal/infra"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const reviewsTable = "reviews"

type ReviewRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReviewRepository(dbtx db.DBTX, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{db: dbtx, logger: logger}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	q := db.Insert(reviewsTable).Rows(goqu.Record{
		"id":          rev.ID(),
		"customer_id": rev.CustomerID(),
		"book_id":     rev.BookID(),
		"rating":      rev.Rating().Value(),
		"comment":     pgconv.NullIfEmpty(rev.Comment().Value()),
		"reviewed_on": rev.ReviewedOn(),
		"created_at":  rev.CreatedAt(),
		"updated_at":  rev.UpdatedAt(),
	})
	if err := exec(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	q := db.Update(reviewsTable).Set(goqu.Record{
		"rating":     rev.Rating().Value(),
		"comment":    pgconv.NullIfEmpty(rev.Comment().Value()),
		"updated_at": rev.UpdatedAt(),
	}).Where(goqu.C("id").Eq(rev.ID()))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update review", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execOne(ctx, r.db, db.Delete(reviewsTable).Where(goqu.C("id").Eq(id))); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	q := db.From(reviewsTable).
		Select("id", "customer_id", "book_id", "rating", "comment", "reviewed_on", "created_at", "updated_at").
		Where(goqu.C("id").Eq(id)).
		ForUpdate(exp.Wait)
	sql, args, err := q.ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build review query", err)
	}

	var (
		rid, customerID, bookID uuid.UUID
		rating                  decimal.Decimal
		comment                 pgtype.Text
		reviewedOn              pgtype.Date
		createdAt, updatedAt    time.Time
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(&rid, &customerID, &bookID, &rating, &comment, &reviewedOn, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find review", err)
	}

	rt, err := review.NewRating(rating)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored review has invalid rating", err)
	}
	cm, err := review.NewComment(pgconv.StringFromPgtype(comment))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored review has invalid comment", err)
	}
	return review.ReconstructReview(rid, customerID, bookID, rt, cm, pgconv.DateFromPgtype(reviewedOn), createdAt, updatedAt), nil
}

func (r *ReviewRepository) ExistsByCustomerAndBook(ctx context.Context, customerID, bookID uuid.UUID) (bool, error) {
	q := db.From(reviewsTable).Select(goqu.L("1")).Where(
		goqu.C("customer_id").Eq(customerID),
		goqu.C("book_id").Eq(bookID),
	).Limit(1)
	found, err := exists(ctx, r.db, q)
	if err != nil {
		return false, infra.ClassifyPgErr(r.logger, "failed to check existing review", err)
	}
	return found, nil
}
