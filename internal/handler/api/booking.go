package api

import (
	"errors"
	"net/http"

	"sweethomes-api/internal/domain/booking"
	reqdto "sweethomes-api/internal/handler/dto/request"
	resdto "sweethomes-api/internal/handler/dto/response"
	"sweethomes-api/internal/handler/middleware"
	"sweethomes-api/internal/infra/hotelapi"
	"sweethomes-api/internal/pkg/errs"
	"sweethomes-api/internal/usecase/commands"
	"sweethomes-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FallbackBookingError is shown when the upstream fails without a usable
// message.
const FallbackBookingError = "Failed to create booking. Please try again."

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	roomQueries     queries.RoomQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, roomQueries queries.RoomQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		roomQueries:     roomQueries,
	}
}

// @Summary Quote a booking
// @Description Validate a booking draft and price it without submitting
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} resdto.ValidationResponse
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.roomQueries.Quote(c.Request.Context(), req.ToDraftInput())
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	if !result.FieldErrors.IsValid() {
		c.JSON(http.StatusUnprocessableEntity, resdto.ValidationResponse{Errors: result.FieldErrors})
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(result))
}

// @Summary Create a guest booking
// @Description Book a room without an account; a guest account is provisioned and logged in
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateGuestBookingRequest true "Guest booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} resdto.ValidationResponse
// @Router /bookings/guest [post]
func (h *BookingHandler) CreateGuestBooking(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateGuestBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateGuestBooking(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	if !result.FieldErrors.IsValid() {
		c.JSON(http.StatusUnprocessableEntity, resdto.ValidationResponse{Errors: result.FieldErrors})
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

// @Summary Create a booking
// @Description Book a room as an authenticated guest; identity comes from the session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} resdto.ValidationResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateMemberBooking(c.Request.Context(), claims.Identity(), req, idempotencyKey)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}
	if !result.FieldErrors.IsValid() {
		c.JSON(http.StatusUnprocessableEntity, resdto.ValidationResponse{Errors: result.FieldErrors})
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	var upErr *hotelapi.UpstreamError

	switch {
	case errs.Is(err, commands.ErrUserNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
	case errs.Is(err, commands.ErrInvalidGuestIdentity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid contact details",
		})
	case errs.Is(err, booking.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": booking.ErrRoomTypeNotFound.Error(),
		})
	case errs.Is(err, commands.ErrBookingInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking request is currently being processed",
		})
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Idempotency key reused with different request",
		})
	case errs.Is(err, queries.ErrRoomCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": FallbackBookingError,
		})
	case errors.As(err, &upErr):
		// Prefer the upstream's wording when it provided one.
		msg := upErr.Message
		if msg == "" {
			msg = FallbackBookingError
		}
		status := http.StatusUnprocessableEntity
		if upErr.StatusCode >= 500 {
			status = http.StatusBadGateway
			msg = FallbackBookingError
		}
		c.JSON(status, gin.H{
			"error": msg,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": FallbackBookingError,
		})
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	header := c.GetHeader("Idempotency-Key")
	if header == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}
	key, err := uuid.Parse(header)
	if err != nil {
		return uuid.Nil, errors.New("Idempotency-Key must be a valid UUID")
	}
	return key, nil
}
