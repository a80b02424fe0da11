package repository

import (
	"context"
	"errors"
	"time"

	"sweethomes-api/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// GuestAccount is the local mirror of a guest provisioned during booking.
// UpstreamUserID is filled once the hotel API accepts the registration;
// Orphaned marks accounts whose reservation submission failed afterwards so
// they can be reconciled.
type GuestAccount struct {
	ID             uuid.UUID
	UpstreamUserID *int64
	Name           string
	Email          string
	Phone          string
	PasswordHash   string
	Orphaned       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type GuestAccountRepository struct {
	pool *pgxpool.Pool
}

func NewGuestAccountRepository(pool *pgxpool.Pool) *GuestAccountRepository {
	return &GuestAccountRepository{pool: pool}
}

func (r *GuestAccountRepository) Create(ctx context.Context, a *GuestAccount) error {
	query, args, err := psql.Insert("guest_accounts").
		Columns("id", "upstream_user_id", "name", "email", "phone", "password_hash").
		Values(a.ID, a.UpstreamUserID, a.Name, a.Email, a.Phone, a.PasswordHash).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build create guest account query", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "guest account already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create guest account", err)
	}
	return nil
}

func (r *GuestAccountRepository) FindByEmail(ctx context.Context, email string) (*GuestAccount, error) {
	query, args, err := psql.Select(
		"id", "upstream_user_id", "name", "email", "phone", "password_hash",
		"orphaned", "created_at", "updated_at",
	).
		From("guest_accounts").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build find guest account query", err)
	}

	var a GuestAccount
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&a.ID, &a.UpstreamUserID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash,
		&a.Orphaned, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "guest account not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find guest account", err)
	}
	return &a, nil
}

// SetUpstreamUserID records the hotel API account ID after registration and
// clears any previous orphan mark.
func (r *GuestAccountRepository) SetUpstreamUserID(ctx context.Context, id uuid.UUID, upstreamID int64) error {
	query, args, err := psql.Update("guest_accounts").
		Set("upstream_user_id", upstreamID).
		Set("orphaned", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build update guest account query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update guest account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "guest account not found", nil)
	}
	return nil
}

// MarkOrphaned flags an account whose registration succeeded but whose
// reservation submission did not.
func (r *GuestAccountRepository) MarkOrphaned(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Update("guest_accounts").
		Set("orphaned", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build mark orphaned query", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark guest account orphaned", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "guest account not found", nil)
	}
	return nil
}
