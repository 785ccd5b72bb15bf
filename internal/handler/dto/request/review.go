package request

import (
	"library-backend/internal/pkg/patch"
	"library-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReviewRequest struct {
	BookID     uuid.UUID       `json:"livroId" binding:"required"`
	Rating     decimal.Decimal `json:"nota"`
	Comment    string          `json:"comentario" binding:"max=1000"`
	ReviewedOn *string         `json:"dtAvaliacao"`
}

func (r *CreateReviewRequest) ToInput() (commands.CreateReviewInput, error) {
	reviewedOn, err := parseOptionalDate(r.ReviewedOn)
	if err != nil {
		return commands.CreateReviewInput{}, err
	}
	return commands.CreateReviewInput{
		BookID:     r.BookID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		ReviewedOn: reviewedOn,
	}, nil
}

type UpdateReviewRequest struct {
	Rating  *decimal.Decimal `json:"nota"`
	Comment *string          `json:"comentario" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{
		Rating:  r.Rating,
		Comment: patch.NonBlank(r.Comment),
	}
}
