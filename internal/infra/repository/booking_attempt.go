package repository

import (
	"context"
	"errors"
	"time"

	"sweethomes-api/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	AttemptStatusProcessing = "processing"
	AttemptStatusCompleted  = "completed"
)

// BookingAttempt is one row of the submission ledger keyed by the client's
// Idempotency-Key. A processing row means a submission with that key is in
// flight; a completed row holds the response to replay.
type BookingAttempt struct {
	Key           uuid.UUID
	Email         string
	RequestHash   string
	Status        string
	ResponseBody  []byte
	ReservationID *int64
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

type BookingAttemptRepository struct {
	pool *pgxpool.Pool
}

func NewBookingAttemptRepository(pool *pgxpool.Pool) *BookingAttemptRepository {
	return &BookingAttemptRepository{pool: pool}
}

// TryInsert claims the key for this submission. A row past its retention
// window no longer blocks the key and is reclaimed in place; a live row
// yields a duplicate-key result and the caller inspects it.
func (r *BookingAttemptRepository) TryInsert(ctx context.Context, key uuid.UUID, email, requestHash string, expiresAt time.Time) error {
	query, args, err := psql.Insert("booking_attempts").
		Columns("key", "email", "request_hash", "status", "expires_at").
		Values(key, email, requestHash, AttemptStatusProcessing, expiresAt).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			email = EXCLUDED.email,
			request_hash = EXCLUDED.request_hash,
			status = EXCLUDED.status,
			response_body = NULL,
			reservation_id = NULL,
			expires_at = EXCLUDED.expires_at,
			created_at = now()
			WHERE booking_attempts.expires_at <= now()`).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build insert booking attempt query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert booking attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "booking attempt key already claimed", nil)
	}
	return nil
}

func (r *BookingAttemptRepository) Get(ctx context.Context, key uuid.UUID, email string) (*BookingAttempt, error) {
	query, args, err := psql.Select(
		"key", "email", "request_hash", "status", "response_body",
		"reservation_id", "expires_at", "created_at",
	).
		From("booking_attempts").
		Where(squirrel.Eq{"key": key, "email": email}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build get booking attempt query", err)
	}

	var a BookingAttempt
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&a.Key, &a.Email, &a.RequestHash, &a.Status, &a.ResponseBody,
		&a.ReservationID, &a.ExpiresAt, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking attempt not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get booking attempt", err)
	}
	return &a, nil
}

// MarkCompleted stores the response to replay on duplicate submissions.
func (r *BookingAttemptRepository) MarkCompleted(ctx context.Context, key uuid.UUID, responseBody []byte, reservationID int64) error {
	query, args, err := psql.Update("booking_attempts").
		Set("status", AttemptStatusCompleted).
		Set("response_body", responseBody).
		Set("reservation_id", reservationID).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build complete booking attempt query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to complete booking attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking attempt not found", nil)
	}
	return nil
}

// Release drops a processing row after a failed submission so the client can
// retry with the same key.
func (r *BookingAttemptRepository) Release(ctx context.Context, key uuid.UUID) error {
	query, args, err := psql.Delete("booking_attempts").
		Where(squirrel.Eq{"key": key, "status": AttemptStatusProcessing}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build release booking attempt query", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to release booking attempt", err)
	}
	return nil
}

// DeleteExpired removes attempts past their retention window.
func (r *BookingAttemptRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete("booking_attempts").
		Where("expires_at < now()").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to build delete expired attempts query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete expired attempts", err)
	}
	return tag.RowsAffected(), nil
}
