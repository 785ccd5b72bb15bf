//go:build unit || e2e

package builder

import (
	"time"

	domreview "library-backend/internal/domain/review"
	reqdto "library-backend/internal/handler/dto/request"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewBuilder struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	BookID       uuid.UUID
	BookTitle    string
	Rating       decimal.Decimal
	Comment      string
	ReviewedOn   *time.Time
	Now          time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Ana Souza",
		BookID:       uuid.New(),
		BookTitle:    "Dom Casmurro",
		Rating:       decimal.RequireFromString("4.5"),
		Comment:      "Leitura excelente",
		Now:          time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(v string) *ReviewBuilder {
	r.Rating = decimal.RequireFromString(v)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.CustomerID, r.BookID, rating, comment, r.ReviewedOn, r.Now), nil
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookID:  r.BookID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		BookID:       r.BookID,
		BookTitle:    r.BookTitle,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewedOn:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:    r.Now,
		UpdatedAt:    r.Now,
	}
}
