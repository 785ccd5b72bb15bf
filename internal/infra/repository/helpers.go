package repository

import (
	"context"
	"time"

	"library-backend/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func exec(ctx context.Context, dbtx db.DBTX, q db.Builder) error {
	sql, args, err := q.ToSQL()
	if err != nil {
		return err
	}
	_, err = dbtx.Exec(ctx, sql, args...)
	return err
}

// execOne fails with pgx.ErrNoRows when no row was affected.
func execOne(ctx context.Context, dbtx db.DBTX, q db.Builder) error {
	sql, args, err := q.ToSQL()
	if err != nil {
		return err
	}
	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func exists(ctx context.Context, dbtx db.DBTX, q db.Builder) (bool, error) {
	sql, args, err := q.ToSQL()
	if err != nil {
		return false, err
	}
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	found := rows.Next()
	return found, rows.Err()
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullableDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
