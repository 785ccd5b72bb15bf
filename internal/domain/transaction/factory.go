package transaction

import (
	"time"

	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingReference = errs.NewCategorized("book and customer are required", errs.ErrValidation)
	ErrEndBeforeStart   = errs.NewCategorized("end date must not be before start date", errs.ErrValidation)
)

// Draft is the creation input as it moves through the defaulting steps.
// Nil fields are "not supplied".
type Draft struct {
	BookID      uuid.UUID
	CustomerID  uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Kind        *Kind
	Status      *Status
	PaymentKind string
}

// StepContext carries what the defaulting steps may look at besides the draft.
type StepContext struct {
	Today              time.Time
	BookHasRentalPrice bool
}

type Step func(d *Draft, sc StepContext)

// DefaultSteps run in this order: kind depends on the book, status on kind,
// end date on status.
var DefaultSteps = []Step{
	DefaultStartDate,
	InferKind,
	DefaultStatus,
	DefaultEndDate,
}

func DefaultStartDate(d *Draft, sc StepContext) {
	if d.StartDate == nil {
		today := clock.DateOf(sc.Today)
		d.StartDate = &today
		return
	}
	start := clock.DateOf(*d.StartDate)
	d.StartDate = &start
}

func InferKind(d *Draft, sc StepContext) {
	if d.Kind != nil && d.Kind.IsValid() {
		return
	}
	k := KindPurchase
	if sc.BookHasRentalPrice {
		k = KindRental
	}
	d.Kind = &k
}

func DefaultStatus(d *Draft, _ StepContext) {
	if d.Kind == nil {
		return
	}
	switch *d.Kind {
	case KindPurchase:
		if d.Status == nil || *d.Status != StatusCancelled {
			s := StatusFinished
			d.Status = &s
		}
	case KindRental:
		if d.Status == nil {
			s := StatusPending
			d.Status = &s
		}
	}
}

func DefaultEndDate(d *Draft, sc StepContext) {
	if d.EndDate != nil || d.Kind == nil || d.Status == nil || d.StartDate == nil {
		return
	}
	if *d.Kind == KindPurchase && *d.Status == StatusFinished {
		d.EndDate = purchaseEndDate(*d.StartDate, sc.Today)
	}
}

func ApplyDefaults(d Draft, sc StepContext, steps ...Step) Draft {
	for _, step := range steps {
		step(&d, sc)
	}
	return d
}

func New(d Draft, sc StepContext, now time.Time) (*Transaction, error) {
	if d.BookID == uuid.Nil || d.CustomerID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if d.Status != nil && !d.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	d = ApplyDefaults(d, sc, DefaultSteps...)

	end := datePtr(d.EndDate)
	if end != nil && end.Before(*d.StartDate) {
		return nil, ErrEndBeforeStart
	}

	return &Transaction{
		id:          uuid.New(),
		bookID:      d.BookID,
		customerID:  d.CustomerID,
		startDate:   *d.StartDate,
		endDate:     end,
		kind:        *d.Kind,
		status:      *d.Status,
		paymentKind: d.PaymentKind,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}
