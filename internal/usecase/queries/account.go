package queries

import (
	"context"
	"time"

	"library-backend/internal/domain/account"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// AccountView never carries the password hash.
type AccountView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	CPF            string     `json:"cpf"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Address        string     `json:"address"`
	Phone          string     `json:"phone"`
	Role           string     `json:"role"`
	CreatedByEmail *string    `json:"created_by_email,omitempty"`
	CreatedByRole  *string    `json:"created_by_role,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AccountReadStore interface {
	// FindByID returns NOT_FOUND when the account exists with another role.
	FindByID(ctx context.Context, role account.Role, id uuid.UUID) (*AccountView, error)
	FindByEmail(ctx context.Context, role account.Role, email string) (*AccountView, error)
	FindByCPF(ctx context.Context, role account.Role, cpf string) (*AccountView, error)
	List(ctx context.Context, role account.Role) ([]*AccountView, error)
}

type AccountQueries interface {
	GetByID(ctx context.Context, role account.Role, id uuid.UUID) (*AccountView, error)
	// GetByEmail and GetByCPF normalize the value the way registration does.
	GetByEmail(ctx context.Context, role account.Role, email string) (*AccountView, error)
	GetByCPF(ctx context.Context, role account.Role, cpf string) (*AccountView, error)
	List(ctx context.Context, role account.Role) ([]*AccountView, error)
	Me(ctx context.Context, actor shared.Actor) (*AccountView, error)
}

type accountQueriesImpl struct {
	store AccountReadStore
}

func NewAccountQueries(store AccountReadStore) AccountQueries {
	return &accountQueriesImpl{store: store}
}

func (q *accountQueriesImpl) GetByID(ctx context.Context, role account.Role, id uuid.UUID) (*AccountView, error) {
	v, err := q.store.FindByID(ctx, role, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, notFoundFor(role))
	}
	return v, nil
}

func (q *accountQueriesImpl) GetByEmail(ctx context.Context, role account.Role, email string) (*AccountView, error) {
	e, err := account.NewEmail(email)
	if err != nil {
		return nil, notFoundFor(role)
	}
	v, err := q.store.FindByEmail(ctx, role, e.Value())
	if err != nil {
		return nil, shared.NotFoundAs(err, notFoundFor(role))
	}
	return v, nil
}

func (q *accountQueriesImpl) GetByCPF(ctx context.Context, role account.Role, cpf string) (*AccountView, error) {
	c, err := account.NewCPF(cpf)
	if err != nil {
		return nil, notFoundFor(role)
	}
	v, err := q.store.FindByCPF(ctx, role, c.Value())
	if err != nil {
		return nil, shared.NotFoundAs(err, notFoundFor(role))
	}
	return v, nil
}

func (q *accountQueriesImpl) List(ctx context.Context, role account.Role) ([]*AccountView, error) {
	return q.store.List(ctx, role)
}

func (q *accountQueriesImpl) Me(ctx context.Context, actor shared.Actor) (*AccountView, error) {
	return q.GetByID(ctx, actor.Role, actor.ID)
}

func notFoundFor(role account.Role) error {
	if role == account.RoleCustomer {
		return shared.ErrCustomerNotFound
	}
	return shared.ErrAccountNotFound
}
