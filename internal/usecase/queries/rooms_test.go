//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"sweethomes-api/internal/domain/booking"
	"sweethomes-api/internal/domain/room"
	"sweethomes-api/internal/pkg/errs"
	"sweethomes-api/internal/usecase/queries"
	queriesmock "sweethomes-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalog() []room.Record {
	return []room.Record{
		{ID: 7, Type: room.TypeDeluxe, PricePerNight: 45000, Status: room.StatusAvailable},
		{ID: 12, Type: room.TypeSuite, PricePerNight: 80000, Status: room.StatusAvailable},
	}
}

func newRoomQueries(t *testing.T) (queries.RoomQueries, *queriesmock.MockRoomSource, *queriesmock.MockRoomCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := queriesmock.NewMockRoomSource(ctrl)
	cache := queriesmock.NewMockRoomCache(ctrl)
	return queries.NewRoomQueries(source, cache), source, cache
}

func TestListRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the upstream", func(t *testing.T) {
		q, _, cache := newRoomQueries(t)
		cache.EXPECT().GetCatalog().Return(catalog(), true)

		records, err := q.ListRooms(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		q, source, cache := newRoomQueries(t)
		cache.EXPECT().GetCatalog().Return(nil, false)
		source.EXPECT().ListRooms(ctx).Return(catalog(), nil)
		cache.EXPECT().SetCatalog(catalog())

		records, err := q.ListRooms(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("upstream failure is marked", func(t *testing.T) {
		q, source, cache := newRoomQueries(t)
		cache.EXPECT().GetCatalog().Return(nil, false)
		source.EXPECT().ListRooms(ctx).Return(nil, errs.New("connection refused"))

		_, err := q.ListRooms(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrRoomCatalogUnavailable))
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestListSummaries(t *testing.T) {
	ctx := context.Background()

	t.Run("derives and caches from the catalog", func(t *testing.T) {
		q, source, cache := newRoomQueries(t)
		cache.EXPECT().GetSummaries().Return(nil, false)
		cache.EXPECT().GetCatalog().Return(nil, false)
		source.EXPECT().ListRooms(ctx).Return(catalog(), nil)
		cache.EXPECT().SetCatalog(catalog())
		cache.EXPECT().SetSummaries(gomock.Any())

		summaries, err := q.ListSummaries(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, room.TypeDeluxe, summaries[0].Type)
		assert.Equal(t, int64(7), summaries[0].RepresentativeRoomID)
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	checkIn := booking.NewDate(2025, time.December, 10)
	checkOut := booking.NewDate(2025, time.December, 13)

	t.Run("field errors returned without pricing", func(t *testing.T) {
		q, _, _ := newRoomQueries(t)

		result, err := q.Quote(ctx, booking.DraftInput{})
		require.NoError(t, err)
		assert.Len(t, result.FieldErrors, 4)
	})

	t.Run("valid draft is priced against summaries", func(t *testing.T) {
		q, _, cache := newRoomQueries(t)
		cache.EXPECT().GetSummaries().Return([]room.TypeSummary{
			{Type: room.TypeDeluxe, AvailableCount: 2, MinPricePerNight: 45000, RepresentativeRoomID: 7},
		}, true)

		result, err := q.Quote(ctx, booking.DraftInput{
			RoomType: "Deluxe",
			CheckIn:  &checkIn,
			CheckOut: &checkOut,
			Guests:   "2-1",
		})
		require.NoError(t, err)
		assert.True(t, result.FieldErrors.IsValid())
		assert.Equal(t, int64(7), result.Quote.RoomID)
		assert.Equal(t, 3, result.Quote.Nights)
		assert.Equal(t, int64(135000), result.Quote.TotalPrice.Amount())
	})

	t.Run("stale room type resolves to not found", func(t *testing.T) {
		q, _, cache := newRoomQueries(t)
		cache.EXPECT().GetSummaries().Return([]room.TypeSummary{}, true)

		_, err := q.Quote(ctx, booking.DraftInput{
			RoomType: "Deluxe",
			CheckIn:  &checkIn,
			CheckOut: &checkOut,
			Guests:   "2-1",
		})
		assert.ErrorIs(t, err, booking.ErrRoomTypeNotFound)
	})
}
