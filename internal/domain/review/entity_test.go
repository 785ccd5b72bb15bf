//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"library-backend/internal/domain/review"
	"library-backend/internal/pkg/errs"
	"library-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.True(t, decimal.RequireFromString("4.5").Equal(actual.Rating().Value()))
		assert.Equal(t, "Leitura excelente", actual.Comment().Value())
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), actual.ReviewedOn())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "minimum rating 0", mutate: func(b *builder.ReviewBuilder) { b.WithRating("0") }},
			{name: "maximum rating 5", mutate: func(b *builder.ReviewBuilder) { b.WithRating("5") }},
			{name: "fractional rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating("3.7") }},
			{name: "above maximum", mutate: func(b *builder.ReviewBuilder) { b.WithRating("5.1") }, errIs: review.ErrInvalidRating},
			{name: "negative", mutate: func(b *builder.ReviewBuilder) { b.WithRating("-0.5") }, errIs: review.ErrInvalidRating},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty comment allowed", mutate: func(b *builder.ReviewBuilder) { b.Comment = "" }},
			{name: "1000 chars", mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("a", 1000) }},
			{name: "1001 chars", mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("a", 1001) }, errIs: review.ErrCommentTooLong},
		})
	})

	t.Run("explicit review date", func(t *testing.T) {
		on := time.Date(2024, time.February, 1, 20, 0, 0, 0, time.UTC)
		actual, err := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.ReviewedOn = &on }).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), actual.ReviewedOn())
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		rating, err := review.NewRating(decimal.NewFromInt(2))
		require.NoError(t, err)
		later := actual.CreatedAt().Add(time.Hour)
		actual.Update(&rating, nil, later)

		assert.True(t, decimal.NewFromInt(2).Equal(actual.Rating().Value()))
		assert.Equal(t, "Leitura excelente", actual.Comment().Value())
		assert.Equal(t, later, actual.UpdatedAt())
	})
}

func TestCheckEligibility(t *testing.T) {
	assert.NoError(t, review.CheckEligibility(review.EligibilityFacts{HasQualifyingTransaction: true}))

	err := review.CheckEligibility(review.EligibilityFacts{})
	assert.True(t, errs.Is(err, review.ErrNotEligible))
	assert.True(t, errs.Is(err, errs.ErrBusinessRule))

	err = review.CheckEligibility(review.EligibilityFacts{HasQualifyingTransaction: true, AlreadyReviewed: true})
	assert.True(t, errs.Is(err, review.ErrAlreadyReviewed))
	assert.True(t, errs.Is(err, errs.ErrConflict))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReviewBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			got, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}
