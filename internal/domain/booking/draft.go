package booking

import (
	"errors"
	"strings"

	"sweethomes-api/internal/domain/room"
)

// ErrRoomTypeNotFound is the resolution failure: the selected type passed
// field validation but no longer exists in the current summary list. It is a
// global error, never attached to a single input.
var ErrRoomTypeNotFound = errors.New("Selected room type not found. Please try again.")

// Field keys and messages surfaced by the draft builder.
const (
	FieldRoomType = "roomType"
	FieldCheckIn  = "checkIn"
	FieldCheckOut = "checkOut"
	FieldGuests   = "guests"

	MsgRoomTypeRequired = "Please select a room type"
	MsgCheckInRequired  = "Please select a check-in date"
	MsgCheckOutRequired = "Please select a check-out date"
	MsgCheckOutNotAfter = "Check-out date must be after check-in date"
	MsgGuestsRequired   = "Please select number of guests"
)

// Placeholder values the room-type select reports while the catalog is
// loading or empty. Both count as "nothing selected".
const (
	SentinelLoading = "loading"
	SentinelNoRooms = "no-rooms"
)

// FieldErrors maps input field name to user-facing message. A draft with any
// entry is invalid and must not be submitted.
type FieldErrors map[string]string

func (e FieldErrors) IsValid() bool {
	return len(e) == 0
}

// DraftInput is the raw form state handed to the builder. Nil dates mean the
// picker has no selection.
type DraftInput struct {
	RoomType        string
	CheckIn         *Date
	CheckOut        *Date
	Guests          string
	Children        int
	SpecialRequests string
}

// Draft is a validated, not-yet-priced booking request.
type Draft struct {
	RoomType        string
	Stay            StayRange
	Adults          int
	Children        int
	Rooms           int
	SpecialRequests string
}

// PricedDraft augments a draft with the resolved room and derived pricing.
type PricedDraft struct {
	Draft
	RoomID        int64
	PricePerNight Money
	Nights        int
	TotalPrice    Money
}

// BuildDraft validates every field independently and collects all errors so
// the form can show each violated field at once. No I/O, no resolution.
func BuildDraft(in DraftInput) (Draft, FieldErrors) {
	fieldErrs := FieldErrors{}

	roomType := strings.TrimSpace(in.RoomType)
	if roomType == "" || roomType == SentinelLoading || roomType == SentinelNoRooms {
		fieldErrs[FieldRoomType] = MsgRoomTypeRequired
	}

	if in.CheckIn == nil || in.CheckIn.IsZero() {
		fieldErrs[FieldCheckIn] = MsgCheckInRequired
	}
	switch {
	case in.CheckOut == nil || in.CheckOut.IsZero():
		fieldErrs[FieldCheckOut] = MsgCheckOutRequired
	case in.CheckIn != nil && !in.CheckIn.IsZero() && !in.CheckOut.After(*in.CheckIn):
		fieldErrs[FieldCheckOut] = MsgCheckOutNotAfter
	}

	var guests GuestSelection
	if in.Guests == "" {
		fieldErrs[FieldGuests] = MsgGuestsRequired
	} else {
		parsed, err := ParseGuestSelection(in.Guests)
		if err != nil {
			fieldErrs[FieldGuests] = MsgGuestsRequired
		} else {
			guests = parsed
		}
	}

	if !fieldErrs.IsValid() {
		return Draft{}, fieldErrs
	}

	stay, err := NewStayRange(*in.CheckIn, *in.CheckOut)
	if err != nil {
		// Unreachable given the checks above; kept as a guard for the
		// StayRange construction invariant.
		fieldErrs[FieldCheckOut] = MsgCheckOutNotAfter
		return Draft{}, fieldErrs
	}

	children := in.Children
	if children < 0 {
		children = 0
	}

	return Draft{
		RoomType:        roomType,
		Stay:            stay,
		Adults:          guests.Adults,
		Children:        children,
		Rooms:           guests.Rooms,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	}, fieldErrs
}

// Price resolves the draft's room type against the current summaries and
// derives nights and total. A missing summary (stale selection, category
// emptied concurrently) yields ErrRoomTypeNotFound.
func (d Draft) Price(summaries []room.TypeSummary) (PricedDraft, error) {
	summary, ok := room.FindSummary(summaries, d.RoomType)
	if !ok {
		return PricedDraft{}, ErrRoomTypeNotFound
	}

	perNight, err := NewMoney(summary.MinPricePerNight)
	if err != nil {
		return PricedDraft{}, err
	}

	nights := d.Stay.Nights()
	return PricedDraft{
		Draft:         d,
		RoomID:        summary.RepresentativeRoomID,
		PricePerNight: perNight,
		Nights:        nights,
		TotalPrice:    TotalPrice(perNight, nights),
	}, nil
}
