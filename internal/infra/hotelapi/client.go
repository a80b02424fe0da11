package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"sweethomes-api/internal/domain/guest"
	"sweethomes-api/internal/domain/room"
	"sweethomes-api/internal/pkg/config"
	"sweethomes-api/internal/pkg/errs"
)

// UpstreamError carries the status and, when the hotel API provided one, the
// human-readable message from its error body. Message may be empty; callers
// decide the fallback wording.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("hotel api returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hotel api returned %d", e.StatusCode)
}

// RegisteredGuest is the upstream account handle returned by register/login.
type RegisteredGuest struct {
	UserID int64
	Token  string
}

// ReservationRequest is the payload of a reservation submission. Dates are
// sent in wire format, prices are computed upstream.
type ReservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomID          int64  `json:"room_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

// Reservation is the confirmed booking as the hotel API records it.
type Reservation struct {
	ID         int64  `json:"id"`
	RoomID     int64  `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"total_price"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg config.HotelAPIConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger,
	}
}

type roomPayload struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	RoomNumber    string `json:"room_number"`
	Type          string `json:"type"`
	PricePerNight int64  `json:"price_per_night"`
	Capacity      int    `json:"capacity"`
	Status        string `json:"status"`
}

// ListRooms fetches the full room catalog. Rows that fail normalization are
// logged and skipped rather than failing the whole listing.
func (c *Client) ListRooms(ctx context.Context) ([]room.Record, error) {
	var payload []roomPayload
	if err := c.do(ctx, http.MethodGet, "/rooms", "", nil, &payload); err != nil {
		return nil, err
	}

	records := make([]room.Record, 0, len(payload))
	for _, p := range payload {
		rec, err := room.Convert(room.APIRoom{
			ID:            p.ID,
			Name:          p.Name,
			RoomNumber:    p.RoomNumber,
			Type:          p.Type,
			PricePerNight: p.PricePerNight,
			Capacity:      p.Capacity,
			Status:        p.Status,
		})
		if err != nil {
			c.logger.Warn("skipping malformed room record",
				slog.Int64("room_id", p.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID int64 `json:"id"`
	} `json:"user"`
}

// Register creates a guest account upstream and returns its session token.
func (c *Client) Register(ctx context.Context, ident guest.Identity, password string) (RegisteredGuest, error) {
	req := registerRequest{
		Name:                 ident.Name,
		Email:                ident.Email,
		Phone:                ident.Phone,
		Password:             password,
		PasswordConfirmation: password,
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", req, &resp); err != nil {
		return RegisteredGuest{}, err
	}
	return RegisteredGuest{UserID: resp.User.ID, Token: resp.Token}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing guest upstream.
func (c *Client) Login(ctx context.Context, email, password string) (RegisteredGuest, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return RegisteredGuest{}, err
	}
	return RegisteredGuest{UserID: resp.User.ID, Token: resp.Token}, nil
}

// CreateReservation submits a booking on behalf of an authenticated guest.
func (c *Client) CreateReservation(ctx context.Context, token string, req ReservationRequest) (Reservation, error) {
	var resp Reservation
	if err := c.do(ctx, http.MethodPost, "/bookings", token, req, &resp); err != nil {
		return Reservation{}, err
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "hotel api request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.decodeError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode hotel api response")
	}
	return nil
}

type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) decodeError(res *http.Response) error {
	var payload errorPayload
	// Error bodies are best effort; an unparsable body still yields a typed
	// error with the status code.
	_ = json.NewDecoder(io.LimitReader(res.Body, 4096)).Decode(&payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	return &UpstreamError{StatusCode: res.StatusCode, Message: msg}
}
