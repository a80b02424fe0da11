package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"sweethomes-api/internal/domain/guest"
	"sweethomes-api/internal/infra/hotelapi"
	"sweethomes-api/internal/infra/notify"
	"sweethomes-api/internal/infra/repository"

	"github.com/google/uuid"
)

// HotelAPI is the upstream reservation system.
type HotelAPI interface {
	Register(ctx context.Context, ident guest.Identity, password string) (hotelapi.RegisteredGuest, error)
	Login(ctx context.Context, email, password string) (hotelapi.RegisteredGuest, error)
	CreateReservation(ctx context.Context, token string, req hotelapi.ReservationRequest) (hotelapi.Reservation, error)
}

// GuestAccountRepository is the local account mirror.
type GuestAccountRepository interface {
	Create(ctx context.Context, a *repository.GuestAccount) error
	FindByEmail(ctx context.Context, email string) (*repository.GuestAccount, error)
	SetUpstreamUserID(ctx context.Context, id uuid.UUID, upstreamID int64) error
	MarkOrphaned(ctx context.Context, id uuid.UUID) error
}

// BookingAttemptRepository is the submission ledger behind the
// Idempotency-Key header.
type BookingAttemptRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, email, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key uuid.UUID, email string) (*repository.BookingAttempt, error)
	MarkCompleted(ctx context.Context, key uuid.UUID, responseBody []byte, reservationID int64) error
	Release(ctx context.Context, key uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// EventPublisher emits booking lifecycle events.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event notify.BookingConfirmed)
}

// TokenIssuer mints the session token handed back after a guest booking.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, ident guest.Identity) (string, error)
}
