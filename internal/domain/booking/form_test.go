//go:build unit

package booking_test

import (
	"testing"
	"time"

	"sweethomes-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormClearsCheckOutWhenCheckInOvertakesIt(t *testing.T) {
	form := booking.NewForm()
	form.SetCheckIn(booking.NewDate(2025, time.December, 10))
	form.SetCheckOut(booking.NewDate(2025, time.December, 12))

	form.SetCheckIn(booking.NewDate(2025, time.December, 12))

	assert.Nil(t, form.CheckOut(), "check-out must be cleared once check-in reaches it")
	require.NotNil(t, form.CheckIn())
	assert.Equal(t, booking.NewDate(2025, time.December, 12), *form.CheckIn())
}

func TestFormKeepsCheckOutWhileStillAfterCheckIn(t *testing.T) {
	form := booking.NewForm()
	form.SetCheckIn(booking.NewDate(2025, time.December, 10))
	form.SetCheckOut(booking.NewDate(2025, time.December, 12))

	form.SetCheckIn(booking.NewDate(2025, time.December, 11))

	require.NotNil(t, form.CheckOut())
	assert.Equal(t, booking.NewDate(2025, time.December, 12), *form.CheckOut())
}

func TestFormPickerBoundsFollowSelection(t *testing.T) {
	today := booking.NewDate(2025, time.December, 1)
	form := booking.NewForm()

	assert.Equal(t, today, form.MinCheckIn(today))
	assert.Equal(t, today.AddDays(1), form.MinCheckOut(today))

	form.SetCheckIn(booking.NewDate(2025, time.December, 20))
	assert.Equal(t, booking.NewDate(2025, time.December, 21), form.MinCheckOut(today))
}

func TestFormReset(t *testing.T) {
	form := booking.NewForm()
	form.SetRoomType("Deluxe")
	form.SetCheckIn(booking.NewDate(2025, time.December, 10))
	form.SetCheckOut(booking.NewDate(2025, time.December, 12))
	form.SetGuests("2-1")

	form.Reset()

	in := form.Input()
	assert.Empty(t, in.RoomType)
	assert.Nil(t, in.CheckIn)
	assert.Nil(t, in.CheckOut)
	assert.Empty(t, in.Guests)
}
