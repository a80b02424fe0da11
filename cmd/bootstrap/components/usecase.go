package components

import (
	"context"
	"time"

	"sweethomes-api/internal/domain/guest"
	"sweethomes-api/internal/infra/notify"
	"sweethomes-api/internal/pkg/clock"
	"sweethomes-api/internal/pkg/jwt"
	"sweethomes-api/internal/usecase/commands"
	"sweethomes-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func() guest.EmailAsPassword { return guest.EmailAsPassword{} },
		fx.As(new(guest.CredentialPolicy)),
	),
	fx.Annotate(
		func(p notify.Publisher) notify.Publisher { return p },
		fx.As(new(commands.EventPublisher)),
	),
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewBookingUseCase,
		newLedgerSweeper,
	),
	fx.Invoke(startLedgerSweeper),
)

const ledgerSweepInterval = time.Hour

func newLedgerSweeper(attempts commands.BookingAttemptRepository) *commands.LedgerSweeper {
	return commands.NewLedgerSweeper(attempts, ledgerSweepInterval)
}

func startLedgerSweeper(lc fx.Lifecycle, sweeper *commands.LedgerSweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
