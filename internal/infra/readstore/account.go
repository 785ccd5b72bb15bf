package readstore

import (
	"context"
	"log/slog"

	"library-backend/internal/domain/account"
	"library-backend/internal/infra"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/pgconv"
	"library-backend/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AccountReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAccountReadStore(dbtx db.DBTX, logger *slog.Logger) *AccountReadStore {
	return &AccountReadStore{db: dbtx, logger: logger}
}

func (r *AccountReadStore) FindByID(ctx context.Context, role account.Role, id uuid.UUID) (*queries.AccountView, error) {
	return r.findOne(ctx, role, goqu.C("id").Eq(id), "failed to get account view by id")
}

func (r *AccountReadStore) FindByEmail(ctx context.Context, role account.Role, email string) (*queries.AccountView, error) {
	return r.findOne(ctx, role, goqu.C("email").Eq(email), "failed to get account view by email")
}

func (r *AccountReadStore) FindByCPF(ctx context.Context, role account.Role, cpf string) (*queries.AccountView, error) {
	return r.findOne(ctx, role, goqu.C("cpf").Eq(cpf), "failed to get account view by cpf")
}

func (r *AccountReadStore) findOne(ctx context.Context, role account.Role, match goqu.Expression, msg string) (*queries.AccountView, error) {
	sql, args, err := accountViewQuery().Where(
		match,
		goqu.C("role").Eq(role.String()),
	).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build account view query", err)
	}
	v, err := scanAccountView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, msg, err)
	}
	return v, nil
}

func (r *AccountReadStore) List(ctx context.Context, role account.Role) ([]*queries.AccountView, error) {
	sql, args, err := accountViewQuery().
		Where(goqu.C("role").Eq(role.String())).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build account list query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list accounts", err)
	}
	defer rows.Close()

	var result []*queries.AccountView
	for rows.Next() {
		v, err := scanAccountView(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr(r.logger, "failed to scan account view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to iterate accounts", err)
	}
	return result, nil
}

func accountViewQuery() *goqu.SelectDataset {
	return db.From("accounts").Select(
		"id", "name", "email", "cpf", "birth_date", "address", "phone", "role",
		"created_by_email", "created_by_role", "created_at", "updated_at",
	)
}

func scanAccountView(row pgx.Row) (*queries.AccountView, error) {
	var (
		v               queries.AccountView
		birth           pgtype.Date
		address, phone  pgtype.Text
		cbEmail, cbRole pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.CPF, &birth, &address, &phone, &v.Role,
		&cbEmail, &cbRole, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.BirthDate = pgconv.DatePtrFromPgtype(birth)
	v.Address = pgconv.StringFromPgtype(address)
	v.Phone = pgconv.StringFromPgtype(phone)
	v.CreatedByEmail = pgconv.StringPtrFromPgtype(cbEmail)
	v.CreatedByRole = pgconv.StringPtrFromPgtype(cbRole)
	return &v, nil
}
