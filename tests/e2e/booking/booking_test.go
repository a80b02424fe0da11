//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	resdto "sweethomes-api/internal/handler/dto/response"
	"sweethomes-api/tests/common/builder"
	"sweethomes-api/tests/common/dbtest"
	commonhttp "sweethomes-api/tests/common/httptest"
	"sweethomes-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	guestBookingURL  = "/api/bookings/guest"
	memberBookingURL = "/api/bookings"
	quoteURL         = "/api/bookings/quote"
	loginURL         = "/api/auth/login"
	roomsURL         = "/api/rooms"
	summariesURL     = "/api/rooms/summaries"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func keyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

func (s *bookingSuite) TestRoomCatalog() {
	s.Run("lists rooms from the upstream", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL, nil, "")

		var rooms []resdto.RoomResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)
		s.Len(rooms, 4)
	})

	s.Run("summarizes only available rooms", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, summariesURL, nil, "")

		var summaries []resdto.RoomSummaryResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &summaries)

		byType := make(map[string]resdto.RoomSummaryResponse)
		for _, sum := range summaries {
			byType[sum.Type] = sum
		}
		s.NotContains(byType, "Standard") // only occupied rooms of that type
		s.Equal(2, byType["Deluxe"].AvailableCount)
		s.Equal(int64(45000), byType["Deluxe"].MinPricePerNight)
		s.Equal(int64(7), byType["Deluxe"].RepresentativeRoomID)
	})

	s.Run("catalog outage returns 503", func() {
		s.Upstream.FailRooms = http.StatusInternalServerError

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL, nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "Failed to load rooms")

		req := builder.NewBookingBuilder().BuildGuestDTO()
		w = commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "Failed to create booking")
	})
}

func (s *bookingSuite) TestQuote() {
	s.Run("prices a valid draft", func() {
		req := builder.NewBookingBuilder().BuildQuoteDTO()
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, quoteURL, req, "")

		var quote resdto.QuoteResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &quote)
		s.Equal(int64(7), quote.RoomID)
		s.Equal(3, quote.Nights)
		s.Equal(int64(45000), quote.PricePerNight)
		s.Equal(int64(135000), quote.TotalPrice)
	})

	s.Run("collects every field error at once", func() {
		req := builder.NewBookingBuilder().BuildQuoteDTO()
		req.RoomType = ""
		req.CheckIn = ""
		req.CheckOut = ""
		req.Guests = ""

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, quoteURL, req, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		var resp resdto.ValidationResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Len(resp.Errors, 4)
	})
}

func (s *bookingSuite) TestGuestBooking() {
	s.Run("books and provisions an account", func() {
		req := builder.NewBookingBuilder().BuildGuestDTO()
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", keyHeader())

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(7), resp.RoomID)
		s.Equal(int64(135000), resp.TotalPrice)
		s.NotEmpty(resp.Token, "guest should be logged in after booking")

		s.Contains(s.Upstream.RegisteredEmails(), req.Email)
		s.Len(s.Upstream.Bookings(), 1)

		var orphaned bool
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT orphaned FROM guest_accounts WHERE email = $1", req.Email).Scan(&orphaned)
		s.Require().NoError(err)
		s.False(orphaned)
	})

	s.Run("same key replays without a second upstream booking", func() {
		req := builder.NewBookingBuilder().BuildGuestDTO()
		headers := keyHeader()

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", headers)
		var first resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &first)

		w = commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", headers)
		var second resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)

		s.True(second.Replayed)
		s.Equal(first.ID, second.ID)
		s.Len(s.Upstream.Bookings(), 1)
	})

	s.Run("same key with a different request is rejected", func() {
		req := builder.NewBookingBuilder().BuildGuestDTO()
		headers := keyHeader()

		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", headers)
		var first resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &first)

		req.SpecialRequests = "late arrival"
		w = commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", headers)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Idempotency key reused")
	})

	s.Run("upstream rejection surfaces its message and marks orphan", func() {
		s.Upstream.FailBookings = http.StatusUnprocessableEntity
		s.Upstream.FailMessage = "Room is not available for the selected dates"

		req := builder.NewBookingBuilder().BuildGuestDTO()
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Room is not available")

		var orphaned bool
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT orphaned FROM guest_accounts WHERE email = $1", req.Email).Scan(&orphaned)
		s.Require().NoError(err)
		s.True(orphaned, "provisioned account should be orphaned when the booking fails")

		// The key is released; a retry after the upstream recovers succeeds.
		s.Upstream.FailBookings = 0
		w = commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", keyHeader())
		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	})

	s.Run("a key past its retention window can be claimed again", func() {
		req := builder.NewBookingBuilder().BuildGuestDTO()
		key := uuid.NewString()
		dbtest.CreateExpiredBookingAttempt(s.T(), s.DB, key, req.Email)

		headers := map[string]string{"Idempotency-Key": key}
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "", headers)

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Len(s.Upstream.Bookings(), 1)
	})

	s.Run("missing idempotency key is rejected", func() {
		req := builder.NewBookingBuilder().BuildGuestDTO()
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, guestBookingURL, req, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Idempotency-Key header is required")
	})
}

func (s *bookingSuite) TestMemberJourney() {
	s.Run("guest booking then login then member booking", func() {
		// First stay provisions the account.
		first := builder.NewBookingBuilder().BuildGuestDTO()
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, guestBookingURL, first, "", keyHeader())
		var created resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		// Password equals the email under the provisioning policy.
		login := map[string]string{"email": first.Email, "password": first.Email}
		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, login, "")
		var session resdto.LoginResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &session)
		s.Equal(first.Name, session.User.Name)
		s.NotEmpty(session.Token)

		// Second stay books with the session identity.
		b := builder.NewBookingBuilder()
		b.CheckIn = "2026-01-05"
		b.CheckOut = "2026-01-08"
		second := b.BuildMemberDTO()

		w = commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, memberBookingURL, second, session.Token, keyHeader())
		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Empty(resp.Token, "member bookings issue no new session")
		s.Len(s.Upstream.Bookings(), 2)
	})

	s.Run("member booking without a session is rejected", func() {
		req := builder.NewBookingBuilder().BuildMemberDTO()
		w := commonhttp.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, memberBookingURL, req, "", keyHeader())
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}
