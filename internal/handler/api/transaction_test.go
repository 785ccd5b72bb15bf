//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"library-backend/internal/domain/account"
	"library-backend/internal/domain/transaction"
	"library-backend/internal/handler/api"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/pkg/errs"
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

type TransactionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTransactionCommands
	mockQueries  *queriesmock.MockTransactionQueries
	customer     caller
	staff        caller
	admin        caller
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.router = newEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTransactionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTransactionQueries(s.mockCtrl)
	h := api.NewTransactionHandler(s.mockCommands, s.mockQueries)

	s.customer = newCaller(s.T(), account.RoleCustomer, "cliente@example.com")
	s.staff = newCaller(s.T(), account.RoleStaff, "funcionario@example.com")
	s.admin = newCaller(s.T(), account.RoleAdmin, "admin@example.com")

	g := s.router.Group("/api/compras")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/minhas", h.Mine)
	g.GET("/cliente/:clienteId", h.ListByCustomer)
	g.GET("/status/:status", h.ListByStatus)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.ChangeStatus)
	g.PATCH("/:id/finalizar", h.Finalize)
	g.PATCH("/:id/renovar", h.Renew)
	g.DELETE("/:id", h.Delete)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TransactionHandlerTestSuite) TestCreate() {
	url := "/api/compras"
	tb := builder.NewTransactionBuilder()
	reqBody := tb.BuildRequestDTO()
	view := tb.BuildView()

	s.Run("success: returns 201 with the stored transaction", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.customer.actor).
			DoAndReturn(func(_ any, in commands.CreateTransactionInput, _ shared.Actor) (uuid.UUID, error) {
				s.Equal(tb.BookID, in.BookID)
				s.Equal("2024-01-01", in.StartDate.Format("2006-01-02"))
				s.Nil(in.EndDate)
				s.Equal("RENTAL", in.Kind)
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customer.token)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("2024-01-01", body.StartDate)
		s.Equal("PENDING", body.Status)
	})

	s.Run("error: 400 when livroId is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("livroId", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when a date is not YYYY-MM-DD", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("dtInicio", "15/03/2024"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid date")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 403 for staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: status follows the command error category", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "other customer", err: commands.ErrNotOwner, code: http.StatusForbidden},
			{name: "unknown book", err: shared.ErrBookNotFound, code: http.StatusNotFound},
			{name: "unknown status", err: transaction.ErrInvalidStatus, code: http.StatusBadRequest},
			{name: "database failure", err: errors.New("connection reset"), code: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customer.token)

				s.Equal(tc.code, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 when dtFim precedes dtInicio", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("dtInicio", "2024-03-10"), testutil.Field("dtFim", "2024-03-01"))
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.customer.actor).
			DoAndReturn(func(_ any, in commands.CreateTransactionInput, _ shared.Actor) (uuid.UUID, error) {
				s.Equal("2024-03-01", in.EndDate.Format("2006-01-02"))
				return uuid.Nil, transaction.ErrEndBeforeStart
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "end date must not be before start date")
	})

	s.Run("error: 400 for a database check violation without driver detail", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrConstraintViolated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "request violates a data constraint")
	})

	s.Run("error: 500 body hides the cause", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("pq: secret detail"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "secret detail")
	})
}

// ================================================================================
// TestChangeStatus / TestFinalize
// ================================================================================

func (s *TransactionHandlerTestSuite) TestChangeStatus() {
	view := builder.NewTransactionBuilder().WithStatus(transaction.StatusInProgress).BuildView()
	url := "/api/compras/" + view.ID.String() + "/status?status=IN_PROGRESS"

	s.Run("success: returns the updated transaction", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "IN_PROGRESS").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.staff.token)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("IN_PROGRESS", body.Status)
	})

	s.Run("error: 400 on an illegal transition", func() {
		err := errs.Mark(&transaction.InvalidTransitionError{From: transaction.StatusFinished, To: transaction.StatusInProgress}, errs.ErrInvalidTransition)
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), view.ID, "IN_PROGRESS").Return(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.admin.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot change status from FINISHED to IN_PROGRESS")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/compras/not-a-uuid/status?status=PENDING", nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 for customers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *TransactionHandlerTestSuite) TestFinalize() {
	view := builder.NewTransactionBuilder().WithStatus(transaction.StatusFinished).BuildView()
	url := "/api/compras/" + view.ID.String() + "/finalizar"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), view.ID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.staff.token)

		var body resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("FINISHED", body.Status)
	})

	s.Run("error: 404 for an unknown transaction", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), view.ID).Return(shared.ErrTransactionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "transaction not found")
	})
}

// ================================================================================
// TestRenew
// ================================================================================

func (s *TransactionHandlerTestSuite) TestRenew() {
	view := builder.NewTransactionBuilder().BuildView()
	url := "/api/compras/" + view.ID.String() + "/renovar"

	s.Run("success: defaults to 15 days", func() {
		s.mockCommands.EXPECT().Renew(gomock.Any(), view.ID, 15, s.customer.actor).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.customer.token)

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("success: honours dias", func() {
		s.mockCommands.EXPECT().Renew(gomock.Any(), view.ID, 7, s.customer.actor).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?dias=7", nil, s.customer.token)

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 when dias is not a number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?dias=abc", nil, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid number of days")
	})

	s.Run("success: accepts the maximum of 365 days", func() {
		s.mockCommands.EXPECT().Renew(gomock.Any(), view.ID, 365, s.customer.actor).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?dias=365", nil, s.customer.token)

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 when dias exceeds 365", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?dias=366", nil, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "renewal cannot exceed 365 days")
	})

	s.Run("error: 400 for a huge dias without overflowing the date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?dias=2000000000", nil, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "renewal cannot exceed 365 days")
	})

	s.Run("error: 400 for purchases", func() {
		s.mockCommands.EXPECT().Renew(gomock.Any(), view.ID, 15, s.customer.actor).Return(transaction.ErrRenewalRestricted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.customer.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "renewal restricted to rentals")
	})
}

// ================================================================================
// TestMine / TestList
// ================================================================================

func (s *TransactionHandlerTestSuite) TestMine() {
	url := "/api/compras/minhas"

	s.Run("success: 204 when the customer has no transactions", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.customer.actor, gomock.Nil(), 0).
			Return(queries.Page[*queries.TransactionView]{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.customer.token)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("success: 200 with the customer's transactions", func() {
		view := builder.NewTransactionBuilder().BuildView()
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.customer.actor, gomock.Nil(), 0).
			Return(queries.Page[*queries.TransactionView]{Items: []*queries.TransactionView{view}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.customer.token)

		var body resdto.TransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 403 for staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *TransactionHandlerTestSuite) TestList() {
	s.Run("success: forwards cursor and limit", func() {
		view := builder.NewTransactionBuilder().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			Return(queries.Page[*queries.TransactionView]{
				Items: []*queries.TransactionView{view},
				Next:  &queries.Cursor{After: "def"},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/compras?cursor=abc&limit=5", nil, s.staff.token)

		var body resdto.TransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("def", body.NextCursor)
	})

	s.Run("error: 400 on a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/compras?limit=ten", nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 on a corrupt cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), &queries.Cursor{After: "@@"}, 0).
			Return(queries.Page[*queries.TransactionView]{}, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/compras?cursor=@@", nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("success: by status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), "PENDENTE", gomock.Nil(), 0).
			Return(queries.Page[*queries.TransactionView]{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/compras/status/PENDENTE", nil, s.admin.token)

		var body resdto.TransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("success: by customer", func() {
		customerID := uuid.New()
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), customerID, gomock.Nil(), 0).
			Return(queries.Page[*queries.TransactionView]{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/compras/cliente/"+customerID.String(), nil, s.staff.token)

		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *TransactionHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/compras/" + id.String()

	s.Run("success: 204 for admin", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.admin.token)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.staff.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 for an unknown transaction", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(shared.ErrTransactionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.admin.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "transaction not found")
	})
}
