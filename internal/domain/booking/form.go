package booking

// Form models the booking form's selection state and its one reactive rule:
// moving check-in onto or past the current check-out clears the check-out so
// the pair can never sit in an invalid state awaiting submit.
type Form struct {
	roomType string
	checkIn  *Date
	checkOut *Date
	guests   string
	children int
	requests string
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) SetRoomType(t string) {
	f.roomType = t
}

func (f *Form) SetGuests(token string) {
	f.guests = token
}

func (f *Form) SetChildren(n int) {
	f.children = n
}

func (f *Form) SetSpecialRequests(s string) {
	f.requests = s
}

func (f *Form) SetCheckIn(d Date) {
	f.checkIn = &d
	if f.checkOut != nil && !f.checkOut.After(d) {
		f.checkOut = nil
	}
}

func (f *Form) SetCheckOut(d Date) {
	f.checkOut = &d
}

func (f *Form) CheckIn() *Date {
	return f.checkIn
}

func (f *Form) CheckOut() *Date {
	return f.checkOut
}

// MinCheckIn and MinCheckOut are the date-picker lower bounds, recomputed
// from the current selection whenever it changes.
func (f *Form) MinCheckIn(today Date) Date {
	return MinCheckIn(today)
}

func (f *Form) MinCheckOut(today Date) Date {
	return MinCheckOut(today, f.checkIn)
}

func (f *Form) Reset() {
	*f = Form{}
}

// Input snapshots the current selections for the draft builder.
func (f *Form) Input() DraftInput {
	return DraftInput{
		RoomType:        f.roomType,
		CheckIn:         f.checkIn,
		CheckOut:        f.checkOut,
		Guests:          f.guests,
		Children:        f.children,
		SpecialRequests: f.requests,
	}
}
