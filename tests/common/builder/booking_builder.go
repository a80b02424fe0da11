//go:build unit || e2e

package builder

import (
	reqdto "sweethomes-api/internal/handler/dto/request"
	"sweethomes-api/internal/usecase/commands"
)

type BookingBuilder struct {
	Name            string
	Email           string
	Phone           string
	RoomType        string
	CheckIn         string
	CheckOut        string
	Guests          string
	Children        int
	SpecialRequests string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:     "Ada Obi",
		Email:    "ada@example.com",
		Phone:    "+2348012345678",
		RoomType: "Deluxe",
		CheckIn:  "2025-12-10",
		CheckOut: "2025-12-13",
		Guests:   "2-1",
	}
}

func (b *BookingBuilder) fields() reqdto.BookingFields {
	return reqdto.BookingFields{
		RoomType:        b.RoomType,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		Children:        b.Children,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildGuestDTO() reqdto.CreateGuestBookingRequest {
	return reqdto.CreateGuestBookingRequest{
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		BookingFields: b.fields(),
	}
}

func (b *BookingBuilder) BuildMemberDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{BookingFields: b.fields()}
}

func (b *BookingBuilder) BuildQuoteDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{BookingFields: b.fields()}
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{
		Reservation: &commands.ReservationView{
			ID:            99,
			RoomID:        7,
			RoomType:      b.RoomType,
			CheckIn:       b.CheckIn,
			CheckOut:      b.CheckOut,
			Nights:        3,
			PricePerNight: 45000,
			TotalPrice:    135000,
			Status:        "pending",
			GuestEmail:    b.Email,
		},
	}
}
