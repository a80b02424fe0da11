package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sweethomes-api/internal/pkg/config"
	"sweethomes-api/internal/pkg/errs"

	"github.com/streadway/amqp"
)

// BookingConfirmed is published once a reservation is accepted upstream.
// Consumers (mail senders, ops dashboards) subscribe to the fanout exchange.
type BookingConfirmed struct {
	ReservationID int64     `json:"reservation_id"`
	RoomID        int64     `json:"room_id"`
	GuestEmail    string    `json:"guest_email"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	TotalPrice    int64     `json:"total_price"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

// Publisher sends booking events to RabbitMQ. Publishing is best effort: a
// broker outage must never fail a booking that the hotel API already accepted.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed)
}

type amqpPublisher struct {
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher connects to the broker and declares the fanout exchange. When
// no broker URL is configured it returns a no-op publisher so local setups
// run without RabbitMQ.
func NewPublisher(cfg config.AMQPConfig, logger *slog.Logger) (Publisher, func(), error) {
	if cfg.URL == "" {
		logger.Info("amqp disabled, booking events will not be published")
		return noopPublisher{}, func() {}, nil
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open amqp channel")
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare amqp exchange")
	}

	cleanup := func() {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close amqp channel", slog.String("error", err.Error()))
		}
		if err := conn.Close(); err != nil {
			logger.Error("failed to close amqp connection", slog.String("error", err.Error()))
		}
	}

	return &amqpPublisher{channel: ch, exchange: cfg.Exchange, logger: logger}, cleanup, nil
}

func (p *amqpPublisher) PublishBookingConfirmed(_ context.Context, event BookingConfirmed) {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode booking event", slog.String("error", err.Error()))
		return
	}

	err = p.channel.Publish(
		p.exchange,
		"", // fanout ignores the routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.ConfirmedAt,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("failed to publish booking event",
			slog.Int64("reservation_id", event.ReservationID),
			slog.String("error", err.Error()),
		)
		return
	}

	p.logger.Info("published booking confirmed event",
		slog.Int64("reservation_id", event.ReservationID),
	)
}

type noopPublisher struct{}

func (noopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) {}
