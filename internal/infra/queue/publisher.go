// Package queue publishes rental lifecycle events to RabbitMQ. Publishing is
// best-effort: errors are logged and returned so callers can ignore them
// without interrupting the main request flow.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueRentalCreated   = "rental.created"
	QueueRentalCompleted = "rental.completed"
)

type RentalEvent struct {
	RentalID       uuid.UUID `json:"rental_id"`
	CarID          uuid.UUID `json:"car_id"`
	ClientID       uuid.UUID `json:"client_id"`
	Status         string    `json:"status"`
	TotalCostCents *int64    `json:"total_cost_cents,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher holds only the broker URL; connections are dialed per publish so
// a broker restart never leaves the service with a dead channel.
type Publisher struct {
	url string
}

// NewPublisher returns nil when no URL is configured; a nil publisher drops
// all events.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

func (p *Publisher) Publish(ctx context.Context, queueName string, event RentalEvent) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		slog.Warn("rabbitmq dial failed", "queue", queueName, "error", err.Error())
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Warn("rabbitmq channel open failed", "queue", queueName, "error", err.Error())
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable declare is idempotent; messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		slog.Warn("rabbitmq queue declare failed", "queue", queueName, "error", err.Error())
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		slog.Warn("rabbitmq publish failed", "queue", queueName, "error", err.Error())
		return err
	}
	return nil
}
