package repository

import (
	"context"
	"log/slog"
	"time"

	"library-backend/internal/domain/transaction"
	"library-backend/internal/infra"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const transactionsTable = "transactions"

var transactionColumns = []any{
	"id", "book_id", "customer_id", "start_date", "end_date", "kind", "status",
	"payment_kind", "created_at", "updated_at",
}

type TransactionRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTransactionRepository(dbtx db.DBTX, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{db: dbtx, logger: logger}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	rec := transactionRecord(t)
	rec["id"] = t.ID()
	rec["book_id"] = t.BookID()
	rec["customer_id"] = t.CustomerID()
	rec["kind"] = t.Kind().String()
	rec["created_at"] = t.CreatedAt()

	if err := exec(ctx, r.db, db.Insert(transactionsTable).Rows(rec)); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create transaction", err)
	}
	return nil
}

// Update writes the mutable columns; book, customer and kind never change.
func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	q := db.Update(transactionsTable).Set(transactionRecord(t)).Where(goqu.C("id").Eq(t.ID()))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update transaction", err)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := db.Delete(transactionsTable).Where(goqu.C("id").Eq(id))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	q := db.From(transactionsTable).Select(transactionColumns...).
		Where(goqu.C("id").Eq(id)).
		ForUpdate(exp.Wait)
	sql, args, err := q.ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build transaction query", err)
	}
	t, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find transaction", err)
	}
	return t, nil
}

func (r *TransactionRepository) HasActive(ctx context.Context, customerID, bookID uuid.UUID) (bool, error) {
	q := db.From(transactionsTable).Select(goqu.L("1")).Where(
		goqu.C("customer_id").Eq(customerID),
		goqu.C("book_id").Eq(bookID),
		goqu.C("status").Neq(transaction.StatusCancelled.String()),
	).Limit(1)
	found, err := exists(ctx, r.db, q)
	if err != nil {
		return false, infra.ClassifyPgErr(r.logger, "failed to check customer transactions", err)
	}
	return found, nil
}

func transactionRecord(t *transaction.Transaction) goqu.Record {
	return goqu.Record{
		"start_date":   t.StartDate(),
		"end_date":     nullableDate(t.EndDate()),
		"status":       t.Status().String(),
		"payment_kind": pgconv.NullIfEmpty(t.PaymentKind()),
		"updated_at":   t.UpdatedAt(),
	}
}

func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var (
		id, bookID, customerID uuid.UUID
		start, end             pgtype.Date
		kind, status           string
		payment                pgtype.Text
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &bookID, &customerID, &start, &end, &kind, &status,
		&payment, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return transaction.ReconstructTransaction(
		id, bookID, customerID,
		pgconv.DateFromPgtype(start), pgconv.DatePtrFromPgtype(end),
		transaction.Kind(kind), transaction.Status(status), pgconv.StringFromPgtype(payment),
		createdAt, updatedAt,
	), nil
}
