//go:build unit

package room_test

import (
	"testing"

	"sweethomes-api/internal/domain/room"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("api room", func(t *testing.T) {
		rec, err := room.Convert(room.APIRoom{
			ID:            7,
			Name:          "Deluxe Room A",
			RoomNumber:    "204",
			Type:          "Deluxe",
			PricePerNight: 45000,
			Capacity:      2,
			Status:        "available",
		})
		require.NoError(t, err)
		assert.Equal(t, room.TypeDeluxe, rec.Type)
		assert.Equal(t, int64(7), rec.ID)
		assert.Equal(t, room.StatusAvailable, rec.Status)
	})

	t.Run("legacy room is always available and has no id", func(t *testing.T) {
		rec, err := room.Convert(room.LegacyRoom{
			Slug:          "classic-suite",
			Name:          "Classic Suite",
			Type:          "Suite",
			PricePerNight: 60000,
		})
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, rec.Status)
		assert.Zero(t, rec.ID)
	})

	cases := []struct {
		name    string
		variant room.Variant
		errIs   error
	}{
		{name: "api room with unknown type", variant: room.APIRoom{ID: 1, Type: "Penthouse", Status: "available"}, errIs: room.ErrUnknownType},
		{name: "api room with bad status", variant: room.APIRoom{ID: 1, Type: "Deluxe", Status: "closed"}, errIs: room.ErrInvalidRecord},
		{name: "api room without id", variant: room.APIRoom{Type: "Deluxe", Status: "available"}, errIs: room.ErrInvalidRecord},
		{name: "api room with negative price", variant: room.APIRoom{ID: 1, Type: "Deluxe", PricePerNight: -1, Status: "available"}, errIs: room.ErrInvalidRecord},
		{name: "legacy room without slug", variant: room.LegacyRoom{Type: "Suite"}, errIs: room.ErrInvalidRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := room.Convert(tc.variant)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestSummarize(t *testing.T) {
	records := []room.Record{
		{ID: 3, Type: room.TypeDeluxe, PricePerNight: 52000, Status: room.StatusAvailable},
		{ID: 7, Type: room.TypeDeluxe, PricePerNight: 45000, Status: room.StatusAvailable},
		{ID: 9, Type: room.TypeDeluxe, PricePerNight: 41000, Status: room.StatusOccupied},
		{ID: 12, Type: room.TypeSuite, PricePerNight: 80000, Status: room.StatusAvailable},
		{ID: 15, Type: room.TypeStandard, PricePerNight: 20000, Status: room.StatusMaintenance},
	}

	got := room.Summarize(records)

	want := []room.TypeSummary{
		{Type: room.TypeDeluxe, AvailableCount: 2, MinPricePerNight: 45000, RepresentativeRoomID: 7},
		{Type: room.TypeSuite, AvailableCount: 1, MinPricePerNight: 80000, RepresentativeRoomID: 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_TieKeepsFirstSeen(t *testing.T) {
	records := []room.Record{
		{ID: 4, Type: room.TypeDeluxe, PricePerNight: 45000, Status: room.StatusAvailable},
		{ID: 8, Type: room.TypeDeluxe, PricePerNight: 45000, Status: room.StatusAvailable},
	}
	got := room.Summarize(records)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].RepresentativeRoomID)
}

func TestFindSummary(t *testing.T) {
	summaries := []room.TypeSummary{
		{Type: room.TypeDeluxe, MinPricePerNight: 45000, RepresentativeRoomID: 7},
	}

	s, ok := room.FindSummary(summaries, "Deluxe")
	require.True(t, ok)
	assert.Equal(t, int64(7), s.RepresentativeRoomID)

	_, ok = room.FindSummary(summaries, "Presidential")
	assert.False(t, ok)
}
