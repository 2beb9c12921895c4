//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fleetops/internal/domain/booking"
	"fleetops/internal/handler/api"
	resdto "fleetops/internal/handler/dto/response"
	"fleetops/internal/infra"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/usecase/commands"
	"fleetops/tests/common/builder"
	"fleetops/tests/common/httptest"
	commandsmock "fleetops/tests/mock/commands"
	queriesmock "fleetops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockTransitions *commandsmock.MockTransitionCommands
	mockQueries     *queriesmock.MockBookingQueries
	handler         *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTransitions = commandsmock.NewMockTransitionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockTransitions, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", "dispatcher")
		c.Next()
	}

	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/transition", authMiddleware, s.handler.RequestTransition)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.Code, response.Code)
		s.Equal(returnView.Status, response.Status)
		s.True(returnView.Outstanding.Equal(response.Outstanding))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", errors.New("no rows"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on read store failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestRequestTransition() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/transition"

	reqBody := map[string]any{"target": "in-rent"}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expectedResult := &commands.TransitionResult{
		Event: booking.TransitionEvent{
			BookingID: bookingID,
			From:      booking.StatusDelivery,
			To:        booking.StatusInRent,
			At:        at,
		},
	}

	s.Run("success: returns 200 OK with TransitionResponse", func() {
		s.mockTransitions.EXPECT().RequestTransition(gomock.Any(), bookingID, booking.StatusInRent).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal("delivery", response.From)
		s.Equal("in-rent", response.To)
	})

	s.Run("success: emitted automation events ride along", func() {
		withAutomation := &commands.TransitionResult{
			Event: booking.TransitionEvent{
				BookingID: bookingID,
				From:      booking.StatusNew,
				To:        booking.StatusPreparation,
				At:        at,
				Blockers:  []booking.Blocker{booking.BlockerMissingDocuments},
			},
			Emitted: []string{commands.EventDriverAutoAssigned},
		}
		s.mockTransitions.EXPECT().RequestTransition(gomock.Any(), bookingID, booking.StatusPreparation).
			Return(withAutomation, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"target": "preparation"}, "bearer-token")

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{commands.EventDriverAutoAssigned}, response.Emitted)
		s.Equal([]string{"missing-documents"}, response.Blockers)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/invalid-uuid/transition", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request when target is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "unknown target status",
				commandsError:  errs.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown target status",
			},
			{
				name:           "illegal transition",
				commandsError:  errs.ErrIllegalTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not allowed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockTransitions.EXPECT().RequestTransition(gomock.Any(), bookingID, booking.StatusInRent).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
