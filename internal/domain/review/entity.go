package review

import (
	"time"

	"library-backend/internal/pkg/clock"

	"github.com/google/uuid"
)

type Review struct {
	id         uuid.UUID
	customerID uuid.UUID
	bookID     uuid.UUID
	rating     Rating
	comment    Comment
	reviewedOn time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReview: reviewedOn defaults to today.
func NewReview(customerID, bookID uuid.UUID, rating Rating, comment Comment, reviewedOn *time.Time, now time.Time) *Review {
	on := clock.DateOf(now)
	if reviewedOn != nil {
		on = clock.DateOf(*reviewedOn)
	}
	return &Review{
		id:         uuid.New(),
		customerID: customerID,
		bookID:     bookID,
		rating:     rating,
		comment:    comment,
		reviewedOn: on,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructReview(id, customerID, bookID uuid.UUID, rating Rating, comment Comment, reviewedOn, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		customerID: customerID,
		bookID:     bookID,
		rating:     rating,
		comment:    comment,
		reviewedOn: reviewedOn,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) BookID() uuid.UUID     { return r.bookID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) ReviewedOn() time.Time { return r.reviewedOn }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Review) IsOwnedBy(customerID uuid.UUID) bool {
	return r.customerID == customerID
}

func (r *Review) Update(rating *Rating, comment *Comment, now time.Time) {
	if rating != nil {
		r.rating = *rating
	}
	if comment != nil {
		r.comment = *comment
	}
	r.updatedAt = now
}
