//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"sweethomes-api/internal/domain/booking"
	"sweethomes-api/internal/domain/guest"
	"sweethomes-api/internal/handler/api"
	reqdto "sweethomes-api/internal/handler/dto/request"
	resdto "sweethomes-api/internal/handler/dto/response"
	"sweethomes-api/internal/handler/middleware"
	"sweethomes-api/internal/infra/hotelapi"
	"sweethomes-api/internal/pkg/errs"
	"sweethomes-api/internal/pkg/jwt"
	"sweethomes-api/internal/usecase/commands"
	"sweethomes-api/internal/usecase/queries"
	"sweethomes-api/tests/common/builder"
	commonhttp "sweethomes-api/tests/common/httptest"
	commandsmock "sweethomes-api/tests/mock/commands"
	queriesmock "sweethomes-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockRoomQueries
	jwtService   *jwt.Service
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	authMw := middleware.NewAuthMiddleware(s.jwtService)
	s.router.POST("/api/bookings/quote", s.handler.Quote)
	s.router.POST("/api/bookings/guest", s.handler.CreateGuestBooking)
	s.router.POST("/api/bookings", authMw.RequireAuth(), s.handler.CreateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) keyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

func (s *BookingHandlerTestSuite) TestCreateGuestBooking() {
	url := "/api/bookings/guest"
	reqBody := builder.NewBookingBuilder().BuildGuestDTO()

	s.Run("creates booking and returns session token", func() {
		result := builder.NewBookingBuilder().BuildResult()
		result.SessionToken = "session-jwt"
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).Return(result, nil)

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(99), resp.ID)
		s.Equal("session-jwt", resp.Token)
	})

	s.Run("replay returns 200", func() {
		result := builder.NewBookingBuilder().BuildResult()
		result.Replayed = true
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).Return(result, nil)

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Replayed)
	})

	s.Run("missing idempotency key is rejected", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("malformed idempotency key is rejected", func() {
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "valid UUID")
	})

	s.Run("field errors return 422 with per-field messages", func() {
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.BookingResult{FieldErrors: booking.FieldErrors{
				booking.FieldRoomType: booking.MsgRoomTypeRequired,
				booking.FieldCheckIn:  booking.MsgCheckInRequired,
			}}, nil)

		empty := reqBody
		empty.RoomType = ""
		empty.CheckIn = ""
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, empty, "", s.keyHeader())

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		var resp resdto.ValidationResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(booking.MsgRoomTypeRequired, resp.Errors[booking.FieldRoomType])
		s.Equal(booking.MsgCheckInRequired, resp.Errors[booking.FieldCheckIn])
	})

	s.Run("stale room type returns 404 with resolution message", func() {
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, booking.ErrRoomTypeNotFound)

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Selected room type not found")
	})

	s.Run("invalid contact details return 400 even when wrapped", func() {
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, errs.Mark(errs.New("invalid email format"), commands.ErrInvalidGuestIdentity))

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid contact details")
	})

	s.Run("in-progress key returns 409", func() {
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, commands.ErrBookingInProgress)

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "currently being processed")
	})

	s.Run("upstream message is preferred over the fallback", func() {
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, &hotelapi.UpstreamError{StatusCode: 422, Message: "Room is not available for the selected dates"})

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Room is not available")
	})

	s.Run("upstream outage uses the generic fallback", func() {
		s.mockCommands.EXPECT().CreateGuestBooking(gomock.Any(), reqBody, gomock.Any()).
			Return(nil, &hotelapi.UpstreamError{StatusCode: 500})

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadGateway, api.FallbackBookingError)
	})
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/bookings"
	reqBody := builder.NewBookingBuilder().BuildMemberDTO()

	ident := guest.Identity{Name: "Ada Obi", Email: "ada@example.com", Phone: "0801"}
	token, err := s.jwtService.GenerateToken(uuid.New(), ident)
	s.Require().NoError(err)

	s.Run("requires a session", func() {
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", s.keyHeader())
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("books with session identity", func() {
		s.mockCommands.EXPECT().CreateMemberBooking(gomock.Any(), ident, reqBody, gomock.Any()).
			Return(builder.NewBookingBuilder().BuildResult(), nil)

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, token, s.keyHeader())

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(99), resp.ID)
		s.Empty(resp.Token)
	})

	s.Run("incomplete session identity is rejected", func() {
		s.mockCommands.EXPECT().CreateMemberBooking(gomock.Any(), gomock.Any(), reqBody, gomock.Any()).
			Return(nil, commands.ErrUserNotAuthenticated)

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, token, s.keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/api/bookings/quote"
	reqBody := builder.NewBookingBuilder().BuildQuoteDTO()

	s.Run("prices a valid draft", func() {
		b := builder.NewBookingBuilder()
		checkIn, _ := booking.ParseDate(b.CheckIn)
		checkOut, _ := booking.ParseDate(b.CheckOut)
		stay, _ := booking.NewStayRange(checkIn, checkOut)
		perNight, _ := booking.NewMoney(45000)

		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteResult{Quote: booking.PricedDraft{
				Draft:         booking.Draft{RoomType: "Deluxe", Stay: stay, Adults: 2, Rooms: 1},
				RoomID:        7,
				PricePerNight: perNight,
				Nights:        3,
				TotalPrice:    booking.TotalPrice(perNight, 3),
			}}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.QuoteResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(135000), resp.TotalPrice)
		s.Equal(3, resp.Nights)
	})

	s.Run("rejects an empty form with every field message", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteResult{FieldErrors: booking.FieldErrors{
				booking.FieldRoomType: booking.MsgRoomTypeRequired,
				booking.FieldCheckIn:  booking.MsgCheckInRequired,
				booking.FieldCheckOut: booking.MsgCheckOutRequired,
				booking.FieldGuests:   booking.MsgGuestsRequired,
			}}, nil)

		empty := reqdto.QuoteRequest{}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, empty, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		var resp resdto.ValidationResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Len(resp.Errors, 4)
	})

	s.Run("catalog outage returns 503", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), queries.ErrRoomCatalogUnavailable))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, api.FallbackBookingError)
	})
}
