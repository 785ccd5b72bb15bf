package repository

import (
	"context"
	"log/slog"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/infra"
	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const accountsTable = "accounts"

var accountColumns = []any{
	"id", "name", "email", "password_hash", "cpf", "birth_date", "address", "phone",
	"role", "created_by_email", "created_by_role", "created_at", "updated_at",
}

type AccountRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAccountRepository(dbtx db.DBTX, logger *slog.Logger) *AccountRepository {
	return &AccountRepository{db: dbtx, logger: logger}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	rec := accountRecord(a)
	rec["id"] = a.ID()
	rec["created_at"] = a.CreatedAt()
	if cb := a.CreatedBy(); cb != nil {
		rec["created_by_email"] = cb.Email
		rec["created_by_role"] = cb.Role.String()
	}

	q := db.Insert(accountsTable).Rows(rec)
	if err := exec(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	q := db.Update(accountsTable).Set(accountRecord(a)).Where(goqu.C("id").Eq(a.ID()))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to update account", err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := db.Delete(accountsTable).Where(goqu.C("id").Eq(id))
	if err := execOne(ctx, r.db, q); err != nil {
		return infra.ClassifyPgErr(r.logger, "failed to delete account", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, db.From(accountsTable).Select(accountColumns...).Where(goqu.C("id").Eq(id)))
}

func (r *AccountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, db.From(accountsTable).Select(accountColumns...).Where(goqu.C("id").Eq(id)).ForUpdate(exp.Wait))
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.findOne(ctx, db.From(accountsTable).Select(accountColumns...).Where(goqu.C("email").Eq(email)))
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return r.exists(ctx, goqu.C("email").Eq(email), excludeID)
}

func (r *AccountRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error) {
	return r.exists(ctx, goqu.C("cpf").Eq(cpf), excludeID)
}

func (r *AccountRepository) exists(ctx context.Context, cond exp.Expression, excludeID uuid.UUID) (bool, error) {
	q := db.From(accountsTable).Select(goqu.L("1")).Where(cond).Limit(1)
	if excludeID != uuid.Nil {
		q = q.Where(goqu.C("id").Neq(excludeID))
	}
	found, err := exists(ctx, r.db, q)
	if err != nil {
		return false, infra.ClassifyPgErr(r.logger, "failed to check account uniqueness", err)
	}
	return found, nil
}

func (r *AccountRepository) findOne(ctx context.Context, q db.Builder) (*account.Account, error) {
	sql, args, err := q.ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build account query", err)
	}
	a, err := scanAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find account", err)
	}
	return a, nil
}

func accountRecord(a *account.Account) goqu.Record {
	id := a.Identity()
	return goqu.Record{
		"name":          id.Name,
		"email":         id.Email.Value(),
		"password_hash": a.PasswordHash(),
		"cpf":           id.CPF.Value(),
		"birth_date":    nullableDate(id.BirthDate),
		"address":       pgconv.NullIfEmpty(id.Address),
		"phone":         pgconv.NullIfEmpty(id.Phone),
		"role":          a.Role().String(),
		"updated_at":    a.UpdatedAt(),
	}
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var (
		id                     uuid.UUID
		name, email, hash, cpf string
		birth                  pgtype.Date
		address, phone         pgtype.Text
		role                   string
		cbEmail, cbRole        pgtype.Text
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &name, &email, &hash, &cpf, &birth, &address, &phone,
		&role, &cbEmail, &cbRole, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	identity := account.Identity{
		Name:      name,
		Email:     account.ReconstructEmail(email),
		CPF:       account.ReconstructCPF(cpf),
		BirthDate: pgconv.DatePtrFromPgtype(birth),
		Address:   pgconv.StringFromPgtype(address),
		Phone:     pgconv.StringFromPgtype(phone),
	}
	var createdBy *account.Creator
	if cbEmail.Valid {
		createdBy = &account.Creator{Email: cbEmail.String, Role: account.Role(pgconv.StringFromPgtype(cbRole))}
	}
	return account.ReconstructAccount(id, identity, hash, account.Role(role), createdBy, createdAt, updatedAt), nil
}
