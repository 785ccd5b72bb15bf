package transaction

import (
	"time"

	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	RentalPeriodDays   = 30
	DefaultRenewalDays = 15
	MaxRenewalDays     = 365
)

var (
	ErrRenewalRestricted = errs.NewCategorized("renewal restricted to rentals", errs.ErrBusinessRule)
	ErrRenewalTooLong    = errs.NewCategorized("renewal cannot exceed 365 days", errs.ErrValidation)
)

type Transaction struct {
	id          uuid.UUID
	bookID      uuid.UUID
	customerID  uuid.UUID
	startDate   time.Time
	endDate     *time.Time
	kind        Kind
	status      Status
	paymentKind string
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructTransaction(
	id, bookID, customerID uuid.UUID,
	startDate time.Time,
	endDate *time.Time,
	kind Kind,
	status Status,
	paymentKind string,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		bookID:      bookID,
		customerID:  customerID,
		startDate:   clock.DateOf(startDate),
		endDate:     datePtr(endDate),
		kind:        kind,
		status:      status,
		paymentKind: paymentKind,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) BookID() uuid.UUID     { return t.bookID }
func (t *Transaction) CustomerID() uuid.UUID { return t.customerID }
func (t *Transaction) StartDate() time.Time  { return t.startDate }
func (t *Transaction) EndDate() *time.Time   { return t.endDate }
func (t *Transaction) Kind() Kind            { return t.kind }
func (t *Transaction) Status() Status        { return t.status }
func (t *Transaction) PaymentKind() string   { return t.paymentKind }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time  { return t.updatedAt }

// ChangeStatus follows the transition table. A purchase reaching FINISHED
// without an end date gets one.
func (t *Transaction) ChangeStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !CanTransition(t.status, to) {
		return newInvalidTransition(t.status, to)
	}
	t.status = to
	if t.kind == KindPurchase && to == StatusFinished && t.endDate == nil {
		t.endDate = purchaseEndDate(t.startDate, now)
	}
	t.updatedAt = now
	return nil
}

// Finalize bypasses the transition table and always lands on FINISHED.
func (t *Transaction) Finalize(now time.Time) {
	switch t.kind {
	case KindRental:
		if t.endDate == nil {
			end := clock.AddDays(t.startDate, RentalPeriodDays)
			t.endDate = &end
		}
	default:
		t.endDate = purchaseEndDate(t.startDate, now)
	}
	t.status = StatusFinished
	t.updatedAt = now
}

// Renew extends a rental. Status goes back to PENDING whatever it was,
// including FINISHED and CANCELLED rentals.
func (t *Transaction) Renew(extraDays int, now time.Time) error {
	if t.kind != KindRental {
		return ErrRenewalRestricted
	}
	if extraDays > MaxRenewalDays {
		return ErrRenewalTooLong
	}
	if extraDays <= 0 {
		extraDays = DefaultRenewalDays
	}
	base := clock.AddDays(t.startDate, RentalPeriodDays)
	if t.endDate != nil {
		base = *t.endDate
	}
	end := clock.AddDays(base, extraDays)
	t.endDate = &end
	t.status = StatusPending
	t.updatedAt = now
	return nil
}

func (t *Transaction) BelongsTo(customerID uuid.UUID) bool {
	return t.customerID == customerID
}

// end date for a finished purchase: today, never before the start date
func purchaseEndDate(start, now time.Time) *time.Time {
	end := clock.DateOf(now)
	if end.Before(start) {
		end = start
	}
	return &end
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := clock.DateOf(*t)
	return &d
}
