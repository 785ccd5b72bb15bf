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

type TransactionReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTransactionReadStore(dbtx db.DBTX, logger *slog.Logger) *TransactionReadStore {
	return &TransactionReadStore{db: dbtx, logger: logger}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	sql, args, err := transactionViewQuery().Where(goqu.I("t.id").Eq(id)).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build transaction view query", err)
	}
	v, err := scanTransactionView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to get transaction view by id", err)
	}
	return v, nil
}

func (r *TransactionReadStore) List(ctx context.Context, filter queries.TransactionFilter, after *queries.Keyset, limit int) ([]*queries.TransactionView, error) {
	sql, args, err := TransactionListQuery(filter, after, limit).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build transaction list query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list transactions", err)
	}
	defer rows.Close()

	result := make([]*queries.TransactionView, 0, limit)
	for rows.Next() {
		v, err := scanTransactionView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr(r.logger, "failed to scan transaction view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to iterate transactions", err)
	}
	return result, nil
}

// TransactionListQuery pages newest first on (created_at, id).
func TransactionListQuery(filter queries.TransactionFilter, after *queries.Keyset, limit int) *goqu.SelectDataset {
	q := transactionViewQuery()
	if filter.CustomerID != nil {
		q = q.Where(goqu.I("t.customer_id").Eq(*filter.CustomerID))
	}
	if filter.Status != nil {
		q = q.Where(goqu.I("t.status").Eq(filter.Status.String()))
	}
	if after != nil {
		q = q.Where(goqu.L("(t.created_at, t.id) < (?, ?)", after.CreatedAt, after.ID))
	}
	return q.Order(goqu.I("t.created_at").Desc(), goqu.I("t.id").Desc()).Limit(uint(limit))
}

func transactionViewQuery() *goqu.SelectDataset {
	return db.From(goqu.T("transactions").As("t")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("t.book_id")))).
		Join(goqu.T("accounts").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("t.customer_id")))).
		Select(
			"t.id", "t.book_id", "b.title", "t.customer_id", "a.name",
			"t.start_date", "t.end_date", "t.kind", "t.status", "t.payment_kind",
			"t.created_at", "t.updated_at",
		)
}

func scanTransactionView(row pgx.Row) (*queries.TransactionView, error) {
	var (
		v          queries.TransactionView
		start, end pgtype.Date
		payment    pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.BookID, &v.BookTitle, &v.CustomerID, &v.CustomerName,
		&start, &end, &v.Kind, &v.Status, &payment, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.StartDate = pgconv.DateFromPgtype(start)
	v.EndDate = pgconv.DatePtrFromPgtype(end)
	v.PaymentKind = pgconv.StringFromPgtype(payment)
	return &v, nil
}
