package db

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=dbtx.go -destination=../../../tests/mock/db/dbtx.go -package=dbmock

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Dialect renders $n placeholders so pgx receives arguments separately.
var Dialect = goqu.Dialect("postgres")

type Builder interface {
	ToSQL() (string, []any, error)
}

func From(table any) *goqu.SelectDataset {
	return Dialect.From(table).Prepared(true)
}

func Insert(table any) *goqu.InsertDataset {
	return Dialect.Insert(table).Prepared(true)
}

func Update(table any) *goqu.UpdateDataset {
	return Dialect.Update(table).Prepared(true)
}

func Delete(table any) *goqu.DeleteDataset {
	return Dialect.Delete(table).Prepared(true)
}
