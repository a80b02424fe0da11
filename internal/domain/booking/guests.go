package booking

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidGuestSelection = errors.New("invalid guest selection token")

// GuestSelection is the parsed form of the "<adults>-<rooms>" token the
// booking form submits (e.g. "2-1" for two guests, one room).
type GuestSelection struct {
	Adults int
	Rooms  int
}

// ParseGuestSelection parses a guest token. The token must contain exactly
// one separator and two positive integers. An absent selection is a
// required-field condition for the draft builder, not a parse concern.
func ParseGuestSelection(token string) (GuestSelection, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return GuestSelection{}, ErrInvalidGuestSelection
	}

	adults, err := strconv.Atoi(parts[0])
	if err != nil {
		return GuestSelection{}, ErrInvalidGuestSelection
	}
	rooms, err := strconv.Atoi(parts[1])
	if err != nil {
		return GuestSelection{}, ErrInvalidGuestSelection
	}
	if adults < 1 || rooms < 1 {
		return GuestSelection{}, ErrInvalidGuestSelection
	}

	return GuestSelection{Adults: adults, Rooms: rooms}, nil
}
