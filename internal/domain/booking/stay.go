package booking

import "errors"

var (
	ErrCheckInRequired  = errors.New("check-in date is required")
	ErrCheckOutRequired = errors.New("check-out date is required")
	ErrCheckOutNotAfter = errors.New("check-out date must be after check-in date")
)

// StayRange is a validated check-in/check-out pair. It can only be
// constructed with checkOut strictly after checkIn, so Nights is always
// positive by construction and callers never re-validate.
type StayRange struct {
	checkIn  Date
	checkOut Date
}

func NewStayRange(checkIn, checkOut Date) (StayRange, error) {
	if checkIn.IsZero() {
		return StayRange{}, ErrCheckInRequired
	}
	if checkOut.IsZero() {
		return StayRange{}, ErrCheckOutRequired
	}
	if !checkOut.After(checkIn) {
		return StayRange{}, ErrCheckOutNotAfter
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r StayRange) CheckIn() Date {
	return r.checkIn
}

func (r StayRange) CheckOut() Date {
	return r.checkOut
}

// Nights is the calendar-day difference between check-out and check-in.
// Both endpoints are normalized dates, so the division is exact.
func (r StayRange) Nights() int {
	return r.checkIn.DaysUntil(r.checkOut)
}

// MinCheckIn is the earliest selectable check-in date. Past dates are kept
// out at the selection layer rather than re-validated afterwards.
func MinCheckIn(today Date) Date {
	return today
}

// MinCheckOut is the earliest selectable check-out date: the day after
// check-in, or the day after today when no check-in has been chosen yet.
func MinCheckOut(today Date, checkIn *Date) Date {
	if checkIn != nil && !checkIn.IsZero() {
		return checkIn.AddDays(1)
	}
	return today.AddDays(1)
}
