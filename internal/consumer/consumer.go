// Package consumer implements the asynchronous write path of the user store:
// a long-lived subscription to the durable user-created queue. Messages are
// decoded into user records and upserted into the shared store; the broker
// connection and channel are owned exclusively by this package and are never
// touched by the HTTP path.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
)

// Consumer consumes user-created events from a durable queue and applies
// them to the user repository.
//
// Delivery settlement is explicit: a message is acknowledged only after the
// store mutation has been applied, so at-least-once delivery never loses a
// record. Redeliveries are harmless because the store upserts by ID.
type Consumer struct {
	cfg    config.Broker
	users  store.UserRepository
	logger *logger.Logger
}

// NewConsumer constructs a Consumer wired to the given repository.
func NewConsumer(cfg config.Broker, users store.UserRepository, logger *logger.Logger) *Consumer {
	logger.Debug().Str("queue", cfg.Queue).Msg("creating broker consumer")
	return &Consumer{
		cfg:    cfg,
		users:  users,
		logger: logger,
	}
}

// Run connects to the broker, declares the durable queue, and consumes it
// until ctx is cancelled or the connection is lost. It implements
// [workers.Worker].
//
// Connection failures are confined here: the returned error is logged by the
// worker runner and never affects the HTTP path's availability.
func (c *Consumer) Run(ctx context.Context) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBrokerConnectionFailure, err)
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: opening channel: %w", ErrBrokerConnectionFailure, err)
	}
	defer channel.Close()

	// durable queue: survives broker restart
	if _, err := channel.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declaring queue %q: %w", ErrBrokerSubscriptionFailure, c.cfg.Queue, err)
	}

	// one unacknowledged message in flight: deliveries are processed and
	// settled in broker order
	if err := channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("%w: setting prefetch: %w", ErrBrokerSubscriptionFailure, err)
	}

	deliveries, err := channel.ConsumeWithContext(ctx, c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: subscribing to queue %q: %w", ErrBrokerSubscriptionFailure, c.cfg.Queue, err)
	}

	c.logger.Info().Str("queue", c.cfg.Queue).Msg("connected to broker, consuming user events")

	for delivery := range deliveries {
		c.handleDelivery(ctx, delivery)
	}

	c.logger.Info().Str("queue", c.cfg.Queue).Msg("delivery stream closed, consumer stopping")

	return nil
}

// connect dials the broker with bounded exponential backoff. The attempt
// budget and base delay come from the broker configuration.
func (c *Consumer) connect(ctx context.Context) (*amqp.Connection, error) {
	var conn *amqp.Connection

	backoff := retry.WithMaxRetries(c.cfg.ConnectAttempts-1, retry.NewExponential(c.cfg.ConnectBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var dialErr error
		conn, dialErr = amqp.Dial(c.cfg.URL)
		if dialErr != nil {
			c.logger.Warn().Err(dialErr).Str("url", c.cfg.URL).Msg("broker connection attempt failed")
			return retry.RetryableError(dialErr)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to broker after %d attempts: %w", c.cfg.ConnectAttempts, err)
	}

	return conn, nil
}

// handleDelivery decodes and applies a single message, then settles it.
//
// Settlement policy:
//   - decode failure — reject without requeue: a malformed body never
//     becomes parseable, requeueing it would only cause a redelivery storm.
//     The broker may dead-letter it if the queue is configured to.
//   - store failure — negatively acknowledge with requeue so the record is
//     not lost.
//   - success — acknowledge after the store mutation is applied.
func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	log := c.logger

	var user models.User
	if err := json.Unmarshal(delivery.Body, &user); err != nil {
		log.Err(err).Str("queue", c.cfg.Queue).Msg("rejecting undecodable message")
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			log.Err(nackErr).Msg("rejecting message failed")
		}
		return
	}

	if _, err := c.users.Upsert(ctx, user); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("storing user from queue failed, requeueing")
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			log.Err(nackErr).Msg("requeueing message failed")
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("acknowledging message failed")
		return
	}

	log.Info().Int64("id", user.ID).Str("name", user.Name).Msg("user received from queue")
}
