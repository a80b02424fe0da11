//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates every mutable table so each subtest starts clean.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE guest_accounts, booking_attempts")
	return err
}

// CreateExpiredBookingAttempt seeds a ledger row already past its retention
// window under the given key.
func CreateExpiredBookingAttempt(t *testing.T, pool *pgxpool.Pool, key, email string) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx,
		"INSERT INTO booking_attempts (key, email, request_hash, status, expires_at) VALUES ($1, $2, $3, 'processing', now() - interval '1 hour')",
		key, email, "stale-hash")
	require.NoError(t, err)
}

// CreateGuestAccount inserts a local account row directly; the e2e login
// tests need one that exists without going through the booking flow.
func CreateGuestAccount(t *testing.T, pool *pgxpool.Pool, name, email, phone, passwordHash string) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx,
		"INSERT INTO guest_accounts (name, email, phone, password_hash, upstream_user_id) VALUES ($1, $2, $3, $4, $5)",
		name, email, phone, passwordHash, int64(1))
	require.NoError(t, err)
}
