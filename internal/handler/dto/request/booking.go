package request

import (
	"strings"

	"sweethomes-api/internal/domain/booking"
)

// BookingFields is the shared form payload of quote and booking requests.
// Dates arrive as wire-format strings; anything unparsable is treated as no
// selection so it surfaces as a field error rather than a bind failure.
type BookingFields struct {
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          string `json:"guests"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

func (f BookingFields) ToDraftInput() booking.DraftInput {
	return booking.DraftInput{
		RoomType:        f.RoomType,
		CheckIn:         parseDate(f.CheckIn),
		CheckOut:        parseDate(f.CheckOut),
		Guests:          f.Guests,
		Children:        f.Children,
		SpecialRequests: f.SpecialRequests,
	}
}

func parseDate(s string) *booking.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := booking.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

type QuoteRequest struct {
	BookingFields
}

// CreateGuestBookingRequest is the unauthenticated booking submission. The
// contact block provisions a guest account before the reservation goes
// upstream.
type CreateGuestBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	BookingFields
}

// CreateBookingRequest is the authenticated booking submission; identity
// comes from the session, never from the body.
type CreateBookingRequest struct {
	BookingFields
}
