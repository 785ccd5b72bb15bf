package commands

import (
	"context"
	"time"

	"library-backend/internal/domain/account"
	domreview "library-backend/internal/domain/review"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReviewInput struct {
	BookID     uuid.UUID
	Rating     decimal.Decimal
	Comment    string
	ReviewedOn *time.Time
}

type UpdateReviewInput struct {
	Rating  *decimal.Decimal
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, in CreateReviewInput, actor shared.Actor) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateReviewInput, actor shared.Actor) error
	Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, in CreateReviewInput, actor shared.Actor) (uuid.UUID, error) {
	rating, err := domreview.NewRating(in.Rating)
	if err != nil {
		return uuid.Nil, err
	}
	comment, err := domreview.NewComment(in.Comment)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Books().FindByID(ctx, in.BookID); err != nil {
			return shared.NotFoundAs(err, shared.ErrBookNotFound)
		}

		var facts domreview.EligibilityFacts
		if facts.HasQualifyingTransaction, err = tx.Transactions().HasActive(ctx, actor.ID, in.BookID); err != nil {
			return err
		}
		if facts.AlreadyReviewed, err = tx.Reviews().ExistsByCustomerAndBook(ctx, actor.ID, in.BookID); err != nil {
			return err
		}
		if err := domreview.CheckEligibility(facts); err != nil {
			return err
		}

		rev := domreview.NewReview(actor.ID, in.BookID, rating, comment, in.ReviewedOn, uc.clock.Now())
		if err := tx.Reviews().Create(ctx, rev); err != nil {
			return translateDuplicate(err)
		}
		createdID = rev.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// Update is restricted to the author of the review.
func (uc *reviewCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateReviewInput, actor shared.Actor) error {
	var rating *domreview.Rating
	if in.Rating != nil {
		r, err := domreview.NewRating(*in.Rating)
		if err != nil {
			return err
		}
		rating = &r
	}
	var comment *domreview.Comment
	if in.Comment != nil {
		c, err := domreview.NewComment(*in.Comment)
		if err != nil {
			return err
		}
		comment = &c
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrReviewNotFound)
		}
		if !rev.IsOwnedBy(actor.ID) {
			return ErrNotOwner
		}
		rev.Update(rating, comment, uc.clock.Now())
		return shared.NotFoundAs(tx.Reviews().Update(ctx, rev), shared.ErrReviewNotFound)
	})
}

// Delete is allowed to the author and to admins.
func (uc *reviewCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrReviewNotFound)
		}
		if !rev.IsOwnedBy(actor.ID) && !actor.Is(account.RoleAdmin) {
			return ErrNotOwner
		}
		return shared.NotFoundAs(tx.Reviews().Delete(ctx, id), shared.ErrReviewNotFound)
	})
}
