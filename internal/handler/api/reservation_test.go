//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"seminar-booking/internal/handler/api"
	resdto "seminar-booking/internal/handler/dto/response"
	"seminar-booking/internal/usecase/commands"
	"seminar-booking/tests/common/builder"
	"seminar-booking/tests/common/httptest"
	commandsmock "seminar-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands)

	s.router.POST("/api/reservations", s.handler.Create)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"

	s.Run("success: returns 201 Created with token and payment link", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		expected := &commands.ReserveResult{
			BookingID:   uuid.New(),
			Token:       "reserved-token",
			PaymentLink: "https://pay.example.com/abc",
		}
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.BookingID, response.BookingID)
		s.Equal(expected.Token, response.Token)
		s.Equal(expected.PaymentLink, response.PaymentLink)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"seminar_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request on invalid date of birth", func() {
		reqBody := builder.NewBookingBuilder().WithDateOfBirth("01-04-1990").BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown seminar", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSeminarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Seminar not found")
	})

	s.Run("error: 409 Conflict for fully booked seminar", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSeminarFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "fully booked")
	})

	s.Run("error: 503 with Retry-After when reservation gate is busy", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationBusy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "busy")
		s.Equal("5", rec.Header().Get("Retry-After"))
	})

	s.Run("error: 502 Bad Gateway when payment link creation fails", func() {
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPaymentGatewayFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment link")
	})
}
