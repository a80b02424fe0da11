//go:build unit

package booking_test

import (
	"testing"
	"time"

	"sweethomes-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStayRange(t *testing.T) {
	checkIn := booking.NewDate(2025, time.December, 3)
	checkOut := booking.NewDate(2025, time.December, 6)

	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStayRange(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, checkIn, stay.CheckIn())
		assert.Equal(t, checkOut, stay.CheckOut())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("single night", func(t *testing.T) {
		stay, err := booking.NewStayRange(checkIn, checkIn.AddDays(1))
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Nights())
	})

	cases := []struct {
		name     string
		checkIn  booking.Date
		checkOut booking.Date
		errIs    error
	}{
		{name: "zero check-in", checkOut: checkOut, errIs: booking.ErrCheckInRequired},
		{name: "zero check-out", checkIn: checkIn, errIs: booking.ErrCheckOutRequired},
		{name: "check-out equals check-in", checkIn: checkIn, checkOut: checkIn, errIs: booking.ErrCheckOutNotAfter},
		{name: "check-out before check-in", checkIn: checkOut, checkOut: checkIn, errIs: booking.ErrCheckOutNotAfter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewStayRange(tc.checkIn, tc.checkOut)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestStayRangeNights_CalendarDays(t *testing.T) {
	// Endpoint normalization means sub-day components can never shift the
	// count: a whole year is exactly its calendar length.
	start := booking.NewDate(2025, time.January, 1)
	end := booking.NewDate(2026, time.January, 1)
	stay, err := booking.NewStayRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, 365, stay.Nights())
}

func TestPickerBounds(t *testing.T) {
	today := booking.NewDate(2025, time.December, 1)

	t.Run("min check-in is today", func(t *testing.T) {
		assert.Equal(t, today, booking.MinCheckIn(today))
	})

	t.Run("min check-out without check-in is tomorrow", func(t *testing.T) {
		assert.Equal(t, today.AddDays(1), booking.MinCheckOut(today, nil))
	})

	t.Run("min check-out follows check-in", func(t *testing.T) {
		checkIn := booking.NewDate(2025, time.December, 10)
		assert.Equal(t, checkIn.AddDays(1), booking.MinCheckOut(today, &checkIn))
	})
}

func TestDateWireFormat(t *testing.T) {
	d, err := booking.ParseDate("2025-12-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-03", d.String())

	_, err = booking.ParseDate("03/12/2025")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	_, err = booking.ParseDate("2025-12-03T10:00:00Z")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}

func TestDateOf_NormalizesToStartOfDay(t *testing.T) {
	late := time.Date(2025, time.December, 3, 23, 59, 59, 0, time.FixedZone("WAT", 3600))
	assert.Equal(t, booking.NewDate(2025, time.December, 3), booking.DateOf(late))
}
