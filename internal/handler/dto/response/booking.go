package response

import (
	"sweethomes-api/internal/domain/booking"
	"sweethomes-api/internal/usecase/commands"
	"sweethomes-api/internal/usecase/queries"
)

type BookingResponse struct {
	ID            int64  `json:"id"`
	RoomID        int64  `json:"roomId"`
	RoomType      string `json:"roomType"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`
	Replayed      bool   `json:"replayed,omitempty"`
	Token         string `json:"token,omitempty"`
}

// ValidationResponse carries the per-field messages of a rejected form.
type ValidationResponse struct {
	Errors booking.FieldErrors `json:"errors"`
}

type QuoteResponse struct {
	RoomType      string `json:"roomType"`
	RoomID        int64  `json:"roomId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	TotalPrice    int64  `json:"totalPrice"`
}

func FromBookingResult(result *commands.BookingResult) *BookingResponse {
	r := result.Reservation
	return &BookingResponse{
		ID:            r.ID,
		RoomID:        r.RoomID,
		RoomType:      r.RoomType,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Nights:        r.Nights,
		PricePerNight: r.PricePerNight,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		Replayed:      result.Replayed,
		Token:         result.SessionToken,
	}
}

func FromQuote(q *queries.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		RoomType:      q.Quote.RoomType,
		RoomID:        q.Quote.RoomID,
		CheckIn:       q.Quote.Stay.CheckIn().String(),
		CheckOut:      q.Quote.Stay.CheckOut().String(),
		Nights:        q.Quote.Nights,
		PricePerNight: q.Quote.PricePerNight.Amount(),
		TotalPrice:    q.Quote.TotalPrice.Amount(),
	}
}
