//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// UpstreamStub is an in-memory stand-in for the hotel REST API. It keeps
// registered guests and submitted bookings so the flows can be asserted end
// to end without the real upstream.
type UpstreamStub struct {
	mu       sync.Mutex
	server   *httptest.Server
	rooms    []map[string]any
	users    map[string]stubUser // keyed by email
	bookings []StubBooking
	nextID   int64

	// FailBookings makes every reservation attempt return this status with
	// the given message. Zero means bookings succeed.
	FailBookings int
	FailMessage  string

	// FailRooms makes the catalog endpoint return this status. Zero serves
	// the seeded rooms.
	FailRooms int
}

type stubUser struct {
	ID       int64
	Password string
	Token    string
}

type StubBooking struct {
	ID     int64
	Email  string
	RoomID int64
}

func NewUpstreamStub() *UpstreamStub {
	s := &UpstreamStub{
		users:  make(map[string]stubUser),
		nextID: 1,
		rooms: []map[string]any{
			{"id": 4, "name": "Deluxe Garden", "room_number": "104", "type": "Deluxe", "price_per_night": 52000, "capacity": 2, "status": "available"},
			{"id": 7, "name": "Deluxe Sea View", "room_number": "107", "type": "Deluxe", "price_per_night": 45000, "capacity": 2, "status": "available"},
			{"id": 9, "name": "Royal Suite", "room_number": "201", "type": "Suite", "price_per_night": 90000, "capacity": 4, "status": "available"},
			{"id": 12, "name": "Standard Twin", "room_number": "101", "type": "Standard", "price_per_night": 25000, "capacity": 2, "status": "occupied"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", s.handleRooms)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /bookings", s.handleBookings)
	s.server = httptest.NewServer(mux)
	return s
}

func (s *UpstreamStub) URL() string { return s.server.URL }

// Reset drops all registered guests and bookings; rooms stay.
func (s *UpstreamStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]stubUser)
	s.bookings = nil
	s.nextID = 1
	s.FailBookings = 0
	s.FailMessage = ""
	s.FailRooms = 0
}

func (s *UpstreamStub) Close() { s.server.Close() }

// Bookings returns a copy of everything submitted so far.
func (s *UpstreamStub) Bookings() []StubBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubBooking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *UpstreamStub) RegisteredEmails() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	emails := make([]string, 0, len(s.users))
	for email := range s.users {
		emails = append(emails, email)
	}
	return emails
}

func (s *UpstreamStub) handleRooms(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailRooms != 0 {
		writeJSON(w, s.FailRooms, map[string]any{"error": "catalog unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, s.rooms)
}

func (s *UpstreamStub) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}
	if req.Password != req.PasswordConfirmation {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "Password confirmation does not match"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Email has already been taken"})
		return
	}
	u := stubUser{ID: s.nextID, Password: req.Password, Token: fmt.Sprintf("stub-token-%d", s.nextID)}
	s.nextID++
	s.users[req.Email] = u
	writeJSON(w, http.StatusCreated, authBody(u))
}

func (s *UpstreamStub) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[req.Email]
	if !ok || u.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, authBody(u))
}

func (s *UpstreamStub) handleBookings(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthenticated"})
		return
	}

	var req struct {
		Email    string `json:"email"`
		RoomID   int64  `json:"room_id"`
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailBookings != 0 {
		msg := s.FailMessage
		if msg == "" {
			msg = "Booking rejected"
		}
		writeJSON(w, s.FailBookings, map[string]string{"message": msg})
		return
	}

	id := s.nextID
	s.nextID++
	s.bookings = append(s.bookings, StubBooking{ID: id, Email: req.Email, RoomID: req.RoomID})
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        id,
		"room_id":   req.RoomID,
		"check_in":  req.CheckIn,
		"check_out": req.CheckOut,
		"status":    "pending",
	})
}

func authBody(u stubUser) map[string]any {
	return map[string]any{
		"token": u.Token,
		"user":  map[string]any{"id": u.ID},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
