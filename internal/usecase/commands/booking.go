package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"sweethomes-api/internal/domain/booking"
	"sweethomes-api/internal/domain/guest"
	reqdto "sweethomes-api/internal/handler/dto/request"
	"sweethomes-api/internal/infra"
	"sweethomes-api/internal/infra/hotelapi"
	"sweethomes-api/internal/infra/notify"
	"sweethomes-api/internal/infra/repository"
	"sweethomes-api/internal/pkg/clock"
	"sweethomes-api/internal/pkg/errs"
	"sweethomes-api/internal/pkg/password"
	"sweethomes-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestIdentity = errs.New("invalid guest identity")
	ErrUserNotAuthenticated = errs.New("user not authenticated")
	ErrBookingInProgress    = errs.New("booking already in progress")
	ErrIdempotencyKeyReused = errs.New("idempotency key reused with different request")
	ErrGuestProvisionFailed = errs.New("guest account provisioning failed")
	ErrLedgerFailure        = errs.New("booking ledger failure")
)

const attemptTTL = 24 * time.Hour

// ReservationView is the booking as returned to the client and stored in the
// ledger for replay.
type ReservationView struct {
	ID            int64  `json:"id"`
	RoomID        int64  `json:"room_id"`
	RoomType      string `json:"room_type"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"price_per_night"`
	TotalPrice    int64  `json:"total_price"`
	Status        string `json:"status"`
	GuestEmail    string `json:"guest_email"`
}

// BookingResult is the workflow outcome. Non-empty FieldErrors means the
// submission never left the validation stage; otherwise Reservation is set.
// SessionToken is only filled on the guest path, which logs the guest in as a
// side effect of booking.
type BookingResult struct {
	FieldErrors  booking.FieldErrors
	Reservation  *ReservationView
	Replayed     bool
	SessionToken string
}

type BookingCommands interface {
	CreateGuestBooking(ctx context.Context, req reqdto.CreateGuestBookingRequest, idempotencyKey uuid.UUID) (*BookingResult, error)
	CreateMemberBooking(ctx context.Context, ident guest.Identity, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	hotelAPI   HotelAPI
	accounts   GuestAccountRepository
	attempts   BookingAttemptRepository
	publisher  EventPublisher
	roomQuery  queries.RoomQueries
	credPolicy guest.CredentialPolicy
	tokens     TokenIssuer
	clock      clock.Clock
}

func NewBookingUseCase(
	hotelAPI HotelAPI,
	accounts GuestAccountRepository,
	attempts BookingAttemptRepository,
	publisher EventPublisher,
	roomQuery queries.RoomQueries,
	credPolicy guest.CredentialPolicy,
	tokens TokenIssuer,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		hotelAPI:   hotelAPI,
		accounts:   accounts,
		attempts:   attempts,
		publisher:  publisher,
		roomQuery:  roomQuery,
		credPolicy: credPolicy,
		tokens:     tokens,
		clock:      clock,
	}
}

// CreateGuestBooking runs the unauthenticated flow: validate, claim the
// idempotency key, provision (or reuse) a guest account upstream, log the
// guest in, and submit the reservation. A registration that succeeds but
// whose booking cannot be completed leaves the local account marked orphaned.
func (u *bookingUseCaseImpl) CreateGuestBooking(ctx context.Context, req reqdto.CreateGuestBookingRequest, idempotencyKey uuid.UUID) (*BookingResult, error) {
	ident, err := guest.NewIdentity(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGuestIdentity)
	}

	draft, fieldErrs := booking.BuildDraft(req.ToDraftInput())
	if !fieldErrs.IsValid() {
		return &BookingResult{FieldErrors: fieldErrs}, nil
	}

	requestHash := calculateRequestHash(req.BookingFields, ident.Email)
	replayed, err := u.claimAttempt(ctx, idempotencyKey, ident.Email, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	priced, err := u.price(ctx, draft)
	if err != nil {
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, err
	}

	account, session, newAccount, err := u.provisionGuest(ctx, ident)
	if err != nil {
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, err
	}

	sessionToken, err := u.tokens.GenerateToken(account.ID, ident)
	if err != nil {
		if newAccount {
			u.markOrphaned(ctx, account.ID)
		}
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, errs.Wrap(err, "failed to issue session token")
	}

	view, err := u.submitReservation(ctx, session.Token, ident, priced, idempotencyKey)
	if err != nil {
		if newAccount {
			u.markOrphaned(ctx, account.ID)
		}
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, err
	}

	return &BookingResult{Reservation: view, SessionToken: sessionToken}, nil
}

// CreateMemberBooking runs the authenticated flow. Identity comes from the
// session claims; a session missing any contact field is rejected before
// anything is validated or claimed.
func (u *bookingUseCaseImpl) CreateMemberBooking(ctx context.Context, ident guest.Identity, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*BookingResult, error) {
	if !ident.Complete() {
		return nil, ErrUserNotAuthenticated
	}

	draft, fieldErrs := booking.BuildDraft(req.ToDraftInput())
	if !fieldErrs.IsValid() {
		return &BookingResult{FieldErrors: fieldErrs}, nil
	}

	requestHash := calculateRequestHash(req.BookingFields, ident.Email)
	replayed, err := u.claimAttempt(ctx, idempotencyKey, ident.Email, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	priced, err := u.price(ctx, draft)
	if err != nil {
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, err
	}

	session, err := u.upstreamLogin(ctx, ident)
	if err != nil {
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, err
	}

	view, err := u.submitReservation(ctx, session.Token, ident, priced, idempotencyKey)
	if err != nil {
		u.releaseAttempt(ctx, idempotencyKey)
		return nil, err
	}

	return &BookingResult{Reservation: view}, nil
}

// claimAttempt inserts the key or resolves what the existing row means. A
// completed row replays its stored response; a processing row with the same
// hash is a double submit, with a different hash a key collision.
func (u *bookingUseCaseImpl) claimAttempt(ctx context.Context, key uuid.UUID, email, requestHash string) (*BookingResult, error) {
	expiresAt := u.clock.Now().Add(attemptTTL)
	err := u.attempts.TryInsert(ctx, key, email, requestHash, expiresAt)
	if err == nil {
		return nil, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, errs.Mark(err, ErrLedgerFailure)
	}

	existing, err := u.attempts.Get(ctx, key, email)
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerFailure)
	}

	switch existing.Status {
	case repository.AttemptStatusCompleted:
		if existing.RequestHash != requestHash {
			return nil, ErrIdempotencyKeyReused
		}
		var view ReservationView
		if err := json.Unmarshal(existing.ResponseBody, &view); err != nil {
			return nil, errs.Mark(err, ErrLedgerFailure)
		}
		return &BookingResult{Reservation: &view, Replayed: true}, nil

	case repository.AttemptStatusProcessing:
		if existing.RequestHash != requestHash {
			return nil, ErrIdempotencyKeyReused
		}
		return nil, ErrBookingInProgress

	default:
		return nil, errs.Mark(errs.Newf("invalid attempt status %q", existing.Status), ErrLedgerFailure)
	}
}

func (u *bookingUseCaseImpl) price(ctx context.Context, draft booking.Draft) (booking.PricedDraft, error) {
	summaries, err := u.roomQuery.ListSummaries(ctx)
	if err != nil {
		return booking.PricedDraft{}, err
	}
	return draft.Price(summaries)
}

// provisionGuest registers the guest upstream, reusing both the local mirror
// and the upstream account when the email is already known.
func (u *bookingUseCaseImpl) provisionGuest(ctx context.Context, ident guest.Identity) (*repository.GuestAccount, hotelapi.RegisteredGuest, bool, error) {
	pw, err := u.credPolicy.Password(ident)
	if err != nil {
		return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(err, ErrGuestProvisionFailed)
	}

	account, err := u.accounts.FindByEmail(ctx, ident.Email)
	newAccount := false
	switch {
	case err == nil:
		// Known guest, reuse the upstream account. Recording the upstream id
		// also clears a leftover orphan flag from an earlier failed booking.
		session, loginErr := u.hotelAPI.Login(ctx, ident.Email, pw)
		if loginErr != nil {
			return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(loginErr, ErrGuestProvisionFailed)
		}
		if err := u.accounts.SetUpstreamUserID(ctx, account.ID, session.UserID); err != nil {
			slog.Warn("failed to record upstream user id",
				slog.String("account_id", account.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		return account, session, false, nil

	case infra.IsKind(err, infra.KindNotFound):
		newAccount = true

	default:
		return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(err, ErrLedgerFailure)
	}

	hash, err := password.HashPassword(pw)
	if err != nil {
		return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(err, ErrGuestProvisionFailed)
	}
	account = &repository.GuestAccount{
		ID:           uuid.New(),
		Name:         ident.Name,
		Email:        ident.Email,
		Phone:        ident.Phone,
		PasswordHash: hash,
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(err, ErrLedgerFailure)
		}
		// Concurrent booking created the mirror first; treat as known guest.
		existing, findErr := u.accounts.FindByEmail(ctx, ident.Email)
		if findErr != nil {
			return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(findErr, ErrLedgerFailure)
		}
		account = existing
		newAccount = false
	}

	session, err := u.hotelAPI.Register(ctx, ident, pw)
	if err != nil {
		var upErr *hotelapi.UpstreamError
		if errors.As(err, &upErr) && (upErr.StatusCode == 409 || upErr.StatusCode == 422) {
			// Email already registered upstream, fall back to login.
			session, err = u.hotelAPI.Login(ctx, ident.Email, pw)
		}
		if err != nil {
			if newAccount {
				u.markOrphaned(ctx, account.ID)
			}
			return nil, hotelapi.RegisteredGuest{}, false, errs.Mark(err, ErrGuestProvisionFailed)
		}
	}

	if err := u.accounts.SetUpstreamUserID(ctx, account.ID, session.UserID); err != nil {
		slog.Warn("failed to record upstream user id",
			slog.String("account_id", account.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return account, session, newAccount, nil
}

func (u *bookingUseCaseImpl) upstreamLogin(ctx context.Context, ident guest.Identity) (hotelapi.RegisteredGuest, error) {
	pw, err := u.credPolicy.Password(ident)
	if err != nil {
		return hotelapi.RegisteredGuest{}, errs.Mark(err, ErrGuestProvisionFailed)
	}
	session, err := u.hotelAPI.Login(ctx, ident.Email, pw)
	if err != nil {
		return hotelapi.RegisteredGuest{}, errs.Mark(err, ErrGuestProvisionFailed)
	}
	return session, nil
}

func (u *bookingUseCaseImpl) submitReservation(ctx context.Context, token string, ident guest.Identity, priced booking.PricedDraft, key uuid.UUID) (*ReservationView, error) {
	res, err := u.hotelAPI.CreateReservation(ctx, token, hotelapi.ReservationRequest{
		Name:            ident.Name,
		Email:           ident.Email,
		Phone:           ident.Phone,
		RoomID:          priced.RoomID,
		CheckIn:         priced.Stay.CheckIn().String(),
		CheckOut:        priced.Stay.CheckOut().String(),
		Adults:          priced.Adults,
		Children:        priced.Children,
		SpecialRequests: priced.SpecialRequests,
	})
	if err != nil {
		return nil, err
	}

	view := &ReservationView{
		ID:            res.ID,
		RoomID:        res.RoomID,
		RoomType:      priced.RoomType,
		CheckIn:       priced.Stay.CheckIn().String(),
		CheckOut:      priced.Stay.CheckOut().String(),
		Nights:        priced.Nights,
		PricePerNight: priced.PricePerNight.Amount(),
		TotalPrice:    res.TotalPrice,
		Status:        res.Status,
		GuestEmail:    ident.Email,
	}
	if view.TotalPrice == 0 {
		view.TotalPrice = priced.TotalPrice.Amount()
	}

	body, err := json.Marshal(view)
	if err != nil {
		return nil, errs.Mark(err, ErrLedgerFailure)
	}
	if err := u.attempts.MarkCompleted(ctx, key, body, res.ID); err != nil {
		// The upstream booking exists; a ledger write failure must not fail it.
		slog.Warn("failed to complete booking attempt",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	}

	u.publisher.PublishBookingConfirmed(ctx, notify.BookingConfirmed{
		ReservationID: view.ID,
		RoomID:        view.RoomID,
		GuestEmail:    view.GuestEmail,
		CheckIn:       view.CheckIn,
		CheckOut:      view.CheckOut,
		TotalPrice:    view.TotalPrice,
		ConfirmedAt:   u.clock.Now(),
	})

	return view, nil
}

func (u *bookingUseCaseImpl) releaseAttempt(ctx context.Context, key uuid.UUID) {
	if err := u.attempts.Release(ctx, key); err != nil {
		slog.Warn("failed to release booking attempt",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (u *bookingUseCaseImpl) markOrphaned(ctx context.Context, accountID uuid.UUID) {
	if err := u.accounts.MarkOrphaned(ctx, accountID); err != nil {
		slog.Warn("failed to mark guest account orphaned",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func calculateRequestHash(fields reqdto.BookingFields, email string) string {
	data, _ := json.Marshal(struct {
		reqdto.BookingFields
		Email string `json:"email"`
	}{BookingFields: fields, Email: email})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
