package queries

//go:generate mockgen -source=rooms.go -destination=../../../tests/mock/queries/rooms_mock.go -package=queriesmock

import (
	"context"

	"sweethomes-api/internal/domain/booking"
	"sweethomes-api/internal/domain/room"
	"sweethomes-api/internal/pkg/errs"
)

var ErrRoomCatalogUnavailable = errs.New("room catalog unavailable")

// RoomSource is the upstream room catalog.
type RoomSource interface {
	ListRooms(ctx context.Context) ([]room.Record, error)
}

// RoomCache holds the fetched catalog and derived summaries for the TTL
// window.
type RoomCache interface {
	GetCatalog() ([]room.Record, bool)
	SetCatalog(records []room.Record)
	GetSummaries() ([]room.TypeSummary, bool)
	SetSummaries(summaries []room.TypeSummary)
}

// QuoteResult is a priced draft or the field errors that prevented pricing.
// Exactly one of the two is meaningful; FieldErrors non-empty means no quote.
type QuoteResult struct {
	Quote       booking.PricedDraft
	FieldErrors booking.FieldErrors
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]room.Record, error)
	ListSummaries(ctx context.Context) ([]room.TypeSummary, error)
	Quote(ctx context.Context, in booking.DraftInput) (*QuoteResult, error)
}

type roomQueriesImpl struct {
	source RoomSource
	cache  RoomCache
}

func NewRoomQueries(source RoomSource, cache RoomCache) RoomQueries {
	return &roomQueriesImpl{source: source, cache: cache}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]room.Record, error) {
	if records, ok := q.cache.GetCatalog(); ok {
		return records, nil
	}

	records, err := q.source.ListRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomCatalogUnavailable)
	}
	q.cache.SetCatalog(records)
	return records, nil
}

func (q *roomQueriesImpl) ListSummaries(ctx context.Context) ([]room.TypeSummary, error) {
	if summaries, ok := q.cache.GetSummaries(); ok {
		return summaries, nil
	}

	records, err := q.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	summaries := room.Summarize(records)
	q.cache.SetSummaries(summaries)
	return summaries, nil
}

// Quote validates the draft and prices it against the current summaries.
// Field errors are data, not failures; only catalog and resolution problems
// surface as errors.
func (q *roomQueriesImpl) Quote(ctx context.Context, in booking.DraftInput) (*QuoteResult, error) {
	draft, fieldErrs := booking.BuildDraft(in)
	if !fieldErrs.IsValid() {
		return &QuoteResult{FieldErrors: fieldErrs}, nil
	}

	summaries, err := q.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	priced, err := draft.Price(summaries)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{Quote: priced}, nil
}
