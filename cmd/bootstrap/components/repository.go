package components

import (
	"sweethomes-api/internal/infra/hotelapi"
	repo_impl "sweethomes-api/internal/infra/repository"
	"sweethomes-api/internal/infra/roomcache"
	"sweethomes-api/internal/usecase/commands"
	"sweethomes-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewGuestAccountRepository,
			fx.As(new(commands.GuestAccountRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingAttemptRepository,
			fx.As(new(commands.BookingAttemptRepository)),
		),
		// The upstream client doubles as the write-side reservation port and
		// the read-side room source.
		fx.Annotate(
			func(c *hotelapi.Client) *hotelapi.Client { return c },
			fx.As(new(commands.HotelAPI)),
			fx.As(new(queries.RoomSource)),
		),
		fx.Annotate(
			func(c *roomcache.Cache) *roomcache.Cache { return c },
			fx.As(new(queries.RoomCache)),
		),
	),
)
