package shared

import (
	"context"

	"library-backend/internal/domain/account"
	"library-backend/internal/domain/book"
	"library-backend/internal/domain/review"
	"library-backend/internal/domain/transaction"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one database transaction.
type Tx interface {
	Transactions() TransactionRepository
	Books() BookRepository
	Accounts() AccountRepository
	Reviews() ReviewRepository
}

type TransactionRepository interface {
	Create(ctx context.Context, t *transaction.Transaction) error
	Update(ctx context.Context, t *transaction.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	// HasActive reports a non-cancelled transaction of the customer for the book.
	HasActive(ctx context.Context, customerID, bookID uuid.UUID) (bool, error)
}

type BookRepository interface {
	Create(ctx context.Context, b *book.Book) error
	Update(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*book.Book, error)
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	// ExistsByEmail and ExistsByCPF ignore the account with excludeID.
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ExistsByCustomerAndBook(ctx context.Context, customerID, bookID uuid.UUID) (bool, error)
}
