//go:build unit

package hotelapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sweethomes-api/internal/domain/guest"
	"sweethomes-api/internal/domain/room"
	"sweethomes-api/internal/infra/hotelapi"
	"sweethomes-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) *hotelapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.HotelAPIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	return hotelapi.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListRooms(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":7,"name":"Deluxe A","room_number":"204","type":"Deluxe","price_per_night":45000,"capacity":2,"status":"available"},
			{"id":9,"name":"Broken","room_number":"301","type":"Penthouse","price_per_night":99999,"capacity":2,"status":"available"},
			{"id":12,"name":"Suite B","room_number":"401","type":"Suite","price_per_night":80000,"capacity":4,"status":"occupied"}
		]`))
	})

	records, err := newClient(t, handler).ListRooms(context.Background())
	require.NoError(t, err)

	// The unknown-type row is dropped, the occupied row survives normalization.
	require.Len(t, records, 2)
	assert.Equal(t, room.TypeDeluxe, records[0].Type)
	assert.Equal(t, room.StatusOccupied, records[1].Status)
}

func TestRegister(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, body["password"], body["password_confirmation"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-123","user":{"id":42}}`))
	})

	ident := guest.Identity{Name: "Ada", Email: "ada@example.com", Phone: "0801"}
	got, err := newClient(t, handler).Register(context.Background(), ident, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "tok-123", got.Token)
}

func TestCreateReservation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		var req hotelapi.ReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.RoomID)
		assert.Equal(t, "2025-12-10", req.CheckIn)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":99,"room_id":7,"check_in":"2025-12-10","check_out":"2025-12-13","status":"pending","total_price":135000}`))
	})

	res, err := newClient(t, handler).CreateReservation(context.Background(), "tok-123", hotelapi.ReservationRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "0801",
		RoomID:   7,
		CheckIn:  "2025-12-10",
		CheckOut: "2025-12-13",
		Adults:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), res.ID)
	assert.Equal(t, int64(135000), res.TotalPrice)
}

func TestUpstreamErrorMessage(t *testing.T) {
	t.Run("prefers server message", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Room is not available for the selected dates"}`))
		})
		_, err := newClient(t, handler).ListRooms(context.Background())
		var upErr *hotelapi.UpstreamError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, http.StatusUnprocessableEntity, upErr.StatusCode)
		assert.Equal(t, "Room is not available for the selected dates", upErr.Message)
	})

	t.Run("unparsable body leaves message empty", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>oops</html>"))
		})
		_, err := newClient(t, handler).ListRooms(context.Background())
		var upErr *hotelapi.UpstreamError
		require.ErrorAs(t, err, &upErr)
		assert.Empty(t, upErr.Message)
	})
}
