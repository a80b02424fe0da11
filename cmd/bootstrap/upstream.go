package bootstrap

import (
	"context"
	"log/slog"

	"sweethomes-api/internal/infra/hotelapi"
	"sweethomes-api/internal/infra/notify"
	"sweethomes-api/internal/infra/roomcache"
	"sweethomes-api/internal/pkg/config"

	"go.uber.org/fx"
)

// UpstreamModule wires everything that talks past the process boundary: the
// hotel REST API client, the in-process room cache in front of it, and the
// AMQP event publisher.
var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewHotelAPIClient,
		NewRoomCache,
		NewEventPublisher,
	),
)

func NewHotelAPIClient(cfg config.Config, logger *slog.Logger) *hotelapi.Client {
	return hotelapi.New(cfg.HotelAPI, logger)
}

func NewRoomCache(cfg config.Config) *roomcache.Cache {
	return roomcache.New(cfg.Cache)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Publisher, error) {
	publisher, cleanup, err := notify.NewPublisher(cfg.AMQP, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
