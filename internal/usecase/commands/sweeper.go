package commands

import (
	"context"
	"log/slog"
	"time"
)

// LedgerSweeper periodically deletes booking attempts past their retention
// window. TryInsert already reclaims an expired row in place when the same
// key is resubmitted; the sweeper keeps the table from accumulating rows
// whose keys are never seen again.
type LedgerSweeper struct {
	attempts BookingAttemptRepository
	interval time.Duration
}

func NewLedgerSweeper(attempts BookingAttemptRepository, interval time.Duration) *LedgerSweeper {
	return &LedgerSweeper{attempts: attempts, interval: interval}
}

// Run sweeps on every tick until ctx is cancelled. Sweep failures are logged
// and retried on the next tick.
func (s *LedgerSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *LedgerSweeper) sweep(ctx context.Context) {
	deleted, err := s.attempts.DeleteExpired(ctx)
	if err != nil {
		slog.Error("failed to sweep expired booking attempts", slog.String("error", err.Error()))
		return
	}
	if deleted > 0 {
		slog.Info("swept expired booking attempts", slog.Int64("count", deleted))
	}
}
