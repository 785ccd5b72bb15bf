//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"library-backend/internal/domain/account"
	domreview "library-backend/internal/domain/review"
	"library-backend/internal/handler/api"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"
	"library-backend/internal/usecase/shared"
	"library-backend/tests/common/builder"
	"library-backend/tests/common/httptest"
	"library-backend/tests/common/testutil"
	commandsmock "library-backend/tests/mock/commands"
	queriesmock "library-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	customer     caller
	staff        caller
	admin        caller
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	s.router = newEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	h := api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.customer = newCaller(s.T(), account.RoleCustomer, "cliente@example.com")
	s.staff = newCaller(s.T(), account.RoleStaff, "funcionario@example.com")
	s.admin = newCaller(s.T(), account.RoleAdmin, "admin@example.com")

	g := s.router.Group("/api/avaliacoes")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/livro/:livroId", h.ListByBook)
	g.GET("/cliente/:clienteId", h.ListByCustomer)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/api/avaliacoes"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.customer.actor).
			DoAndReturn(func(_ any, in commands.CreateReviewInput, _ shared.Actor) (uuid.UUID, error) {
				s.Equal(reqBody.BookID, in.BookID)
				s.True(reqBody.Rating.Equal(in.Rating))
				s.Nil(in.ReviewedOn)
				return returnView.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customer.token)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
	})

	validation := []testCaseReview{
		{name: "missing field: livroId", mutate: testutil.Field("livroId", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comentario", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "malformed review date", mutate: testutil.Field("dtAvaliacao", "2024-13-01"), expectCode: http.StatusBadRequest, expectInBody: "invalid date"},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.customer.token)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	domainErrors := []struct {
		name string
		err  error
		code int
	}{
		{name: "rating out of range", err: domreview.ErrInvalidRating, code: http.StatusBadRequest},
		{name: "no transaction for the book", err: domreview.ErrNotEligible, code: http.StatusBadRequest},
		{name: "already reviewed", err: domreview.ErrAlreadyReviewed, code: http.StatusBadRequest},
		{name: "unknown book", err: shared.ErrBookNotFound, code: http.StatusNotFound},
	}

	s.Run("error: command errors map to their category", func() {
		for _, tc := range domainErrors {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customer.token)

				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.err.Error())
			})
		}
	})

	s.Run("error: 403 for staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

// ================================================================================
// TestRead
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRead() {
	view := builder.NewReviewBuilder().BuildView()

	s.Run("success: get is public", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/avaliacoes/"+view.ID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("4.5", body["nota"])
		s.Equal(view.Comment, body["comentario"])
	})

	s.Run("error: 404 for an unknown review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, shared.ErrReviewNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/avaliacoes/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "review not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/avaliacoes/abc", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("success: list by book", func() {
		s.mockQueries.EXPECT().ListByBook(gomock.Any(), view.BookID).Return([]*queries.ReviewView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/avaliacoes/livro/"+view.BookID.String(), nil, "")

		var body []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: list by customer returns an empty array", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), view.CustomerID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/avaliacoes/cliente/"+view.CustomerID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	view := builder.NewReviewBuilder().BuildView()
	url := "/api/avaliacoes/" + view.ID.String()
	reqBody := builder.NewReviewBuilder().WithRating("3").BuildUpdateRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.customer.actor).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.UpdateReviewInput, _ shared.Actor) error {
				s.Require().NotNil(in.Rating)
				s.Equal("3", in.Rating.String())
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.customer.token)

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 403 when the caller is not the author", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.customer.actor).Return(commands.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "operation restricted to the owner")
	})

	s.Run("error: 403 for admins at the gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.admin.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/avaliacoes/" + id.String()

	s.Run("success: admin", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.admin.actor).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.admin.token)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: author", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.customer.actor).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.customer.token)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}
