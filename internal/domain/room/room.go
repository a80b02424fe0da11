package room

import (
	"errors"
	"sort"
)

var (
	ErrUnknownType   = errors.New("unknown room type")
	ErrInvalidRecord = errors.New("invalid room record")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeStandard     Type = "Standard"
	TypeDeluxe       Type = "Deluxe"
	TypeSuite        Type = "Suite"
	TypeExecutive    Type = "Executive"
	TypePresidential Type = "Presidential"
)

func NewType(value string) (Type, error) {
	t := Type(value)
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypeExecutive, TypePresidential:
		return t, nil
	default:
		return "", ErrUnknownType
	}
}

func (t Type) String() string {
	return string(t)
}

// Record is the single normalized room shape the rest of the codebase works
// with. The two upstream shapes (current API records and the legacy static
// catalog) are converted exactly once, at the boundary, via Convert.
type Record struct {
	ID            int64
	Name          string
	RoomNumber    string
	Type          Type
	PricePerNight int64
	Capacity      int
	Status        Status
}

// Variant is one of the two source shapes a room record can arrive in.
type Variant interface {
	record() (Record, error)
}

// APIRoom is a room row as served by the upstream hotel REST API.
type APIRoom struct {
	ID            int64
	Name          string
	RoomNumber    string
	Type          string
	PricePerNight int64
	Capacity      int
	Status        string
}

func (a APIRoom) record() (Record, error) {
	if a.ID <= 0 || a.PricePerNight < 0 {
		return Record{}, ErrInvalidRecord
	}
	t, err := NewType(a.Type)
	if err != nil {
		return Record{}, err
	}
	status := Status(a.Status)
	if !status.IsValid() {
		return Record{}, ErrInvalidRecord
	}
	return Record{
		ID:            a.ID,
		Name:          a.Name,
		RoomNumber:    a.RoomNumber,
		Type:          t,
		PricePerNight: a.PricePerNight,
		Capacity:      a.Capacity,
		Status:        status,
	}, nil
}

// LegacyRoom is an entry from the static marketing catalog that predates the
// API. Legacy rooms have no real identifier or occupancy state; they are
// always presented as available.
type LegacyRoom struct {
	Slug          string
	Name          string
	Type          string
	PricePerNight int64
}

func (l LegacyRoom) record() (Record, error) {
	if l.Slug == "" || l.PricePerNight < 0 {
		return Record{}, ErrInvalidRecord
	}
	t, err := NewType(l.Type)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Name:          l.Name,
		Type:          t,
		PricePerNight: l.PricePerNight,
		Status:        StatusAvailable,
	}, nil
}

// Convert normalizes either variant into a Record.
func Convert(v Variant) (Record, error) {
	return v.record()
}

// TypeSummary aggregates the available rooms of one category: how many there
// are, the cheapest nightly rate, and the ID of the room carrying that rate.
type TypeSummary struct {
	Type                 Type
	AvailableCount       int
	MinPricePerNight     int64
	RepresentativeRoomID int64
}

// Summarize groups available rooms by type. Rooms that are occupied or under
// maintenance are excluded before grouping. The representative room is the
// cheapest one of its category (first seen wins on ties). Results are ordered
// by type name for stable output.
func Summarize(records []Record) []TypeSummary {
	byType := make(map[Type]*TypeSummary)
	for _, r := range records {
		if r.Status != StatusAvailable {
			continue
		}
		s, ok := byType[r.Type]
		if !ok {
			byType[r.Type] = &TypeSummary{
				Type:                 r.Type,
				AvailableCount:       1,
				MinPricePerNight:     r.PricePerNight,
				RepresentativeRoomID: r.ID,
			}
			continue
		}
		s.AvailableCount++
		if r.PricePerNight < s.MinPricePerNight {
			s.MinPricePerNight = r.PricePerNight
			s.RepresentativeRoomID = r.ID
		}
	}

	summaries := make([]TypeSummary, 0, len(byType))
	for _, s := range byType {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Type < summaries[j].Type
	})
	return summaries
}

// FindSummary resolves a selected room type against the current summary list.
func FindSummary(summaries []TypeSummary, t string) (TypeSummary, bool) {
	for _, s := range summaries {
		if string(s.Type) == t {
			return s, true
		}
	}
	return TypeSummary{}, false
}
