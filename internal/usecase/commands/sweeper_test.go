//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sweethomes-api/internal/usecase/commands"
	commandsmock "sweethomes-api/tests/mock/commands"

	"go.uber.org/mock/gomock"
)

func TestLedgerSweeper_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	attempts := commandsmock.NewMockBookingAttemptRepository(ctrl)

	swept := make(chan struct{}, 1)
	attempts.EXPECT().DeleteExpired(gomock.Any()).
		DoAndReturn(func(context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 2, nil
		}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := commands.NewLedgerSweeper(attempts, time.Millisecond)

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep never ran")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on cancel")
	}
}
