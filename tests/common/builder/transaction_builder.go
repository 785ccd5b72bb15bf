//go:build unit || e2e

package builder

import (
	"time"

	"library-backend/internal/domain/transaction"
	reqdto "library-backend/internal/handler/dto/request"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionBuilder struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	CustomerID  uuid.UUID
	StartDate   time.Time
	EndDate     *time.Time
	Kind        transaction.Kind
	Status      transaction.Status
	PaymentKind string
	CreatedAt   time.Time
}

func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:          uuid.New(),
		BookID:      uuid.New(),
		CustomerID:  uuid.New(),
		StartDate:   Date(2024, time.January, 1),
		Kind:        transaction.KindRental,
		Status:      transaction.StatusPending,
		PaymentKind: "PIX",
		CreatedAt:   time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) AsPurchase() *TransactionBuilder {
	b.Kind = transaction.KindPurchase
	b.Status = transaction.StatusFinished
	end := b.StartDate
	b.EndDate = &end
	return b
}

func (b *TransactionBuilder) WithStatus(s transaction.Status) *TransactionBuilder {
	b.Status = s
	return b
}

func (b *TransactionBuilder) WithEndDate(d time.Time) *TransactionBuilder {
	b.EndDate = &d
	return b
}

func (b *TransactionBuilder) BuildDomain() *transaction.Transaction {
	return transaction.ReconstructTransaction(
		b.ID, b.BookID, b.CustomerID,
		b.StartDate, b.EndDate,
		b.Kind, b.Status, b.PaymentKind,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *TransactionBuilder) BuildDraft() transaction.Draft {
	start := b.StartDate
	return transaction.Draft{
		BookID:      b.BookID,
		CustomerID:  b.CustomerID,
		StartDate:   &start,
		PaymentKind: b.PaymentKind,
	}
}

func (b *TransactionBuilder) BuildRequestDTO() reqdto.CreateTransactionRequest {
	start := b.StartDate.Format(time.DateOnly)
	req := reqdto.CreateTransactionRequest{
		BookID:      b.BookID,
		CustomerID:  b.CustomerID,
		StartDate:   &start,
		Kind:        b.Kind.String(),
		PaymentKind: b.PaymentKind,
	}
	if b.EndDate != nil {
		end := b.EndDate.Format(time.DateOnly)
		req.EndDate = &end
	}
	return req
}

func (b *TransactionBuilder) BuildView() *queries.TransactionView {
	return &queries.TransactionView{
		ID:           b.ID,
		BookID:       b.BookID,
		BookTitle:    "Dom Casmurro",
		CustomerID:   b.CustomerID,
		CustomerName: "Ana Souza",
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Kind:         b.Kind.String(),
		Status:       b.Status.String(),
		PaymentKind:  b.PaymentKind,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}
