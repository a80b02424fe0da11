package response

import (
	"log/slog"

	"sweethomes-api/internal/domain/room"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	RoomNumber    string `json:"roomNumber"`
	Type          string `json:"type"`
	PricePerNight int64  `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
	Status        string `json:"status"`
}

type RoomSummaryResponse struct {
	Type                 string `json:"type"`
	AvailableCount       int    `json:"availableCount"`
	MinPricePerNight     int64  `json:"minPricePerNight"`
	RepresentativeRoomID int64  `json:"representativeRoomId"`
}

func FromRooms(records []room.Record) []RoomResponse {
	out := make([]RoomResponse, 0, len(records))
	for _, rec := range records {
		var resp RoomResponse
		if err := copier.Copy(&resp, &rec); err != nil {
			slog.Warn("failed to map room record", "room_id", rec.ID, "error", err.Error())
			continue
		}
		out = append(out, resp)
	}
	return out
}

func FromSummaries(summaries []room.TypeSummary) []RoomSummaryResponse {
	out := make([]RoomSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		var resp RoomSummaryResponse
		if err := copier.Copy(&resp, &s); err != nil {
			slog.Warn("failed to map room summary", "type", s.Type.String(), "error", err.Error())
			continue
		}
		out = append(out, resp)
	}
	return out
}
