package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gdg-garage/hotel-web/internal/models"
)

const (
	EventRegistrationCreated = "registration.created"
	EventReservationCreated  = "reservation.created"
)

// Event is the message body published for downstream consumers such as the
// CRM sync and the housekeeping planner.
type Event struct {
	Type         string                     `json:"type"`
	OccurredAt   time.Time                  `json:"occurred_at"`
	Registration *models.RegistrationRecord `json:"registration,omitempty"`
	Reservation  *models.ReservationRecord  `json:"reservation,omitempty"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// QueueNotifier publishes every notification as a persistent JSON message
// on a durable RabbitMQ queue.
type QueueNotifier struct {
	conn    *amqp.Connection
	channel publisher
	queue   string
	now     func() time.Time
}

func NewQueueNotifier(url, queue string) (*QueueNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return &QueueNotifier{conn: conn, channel: ch, queue: queue, now: time.Now}, nil
}

func (n *QueueNotifier) NotifyRegistration(ctx context.Context, record models.RegistrationRecord) error {
	return n.publish(ctx, Event{
		Type:         EventRegistrationCreated,
		OccurredAt:   n.now().UTC(),
		Registration: &record,
	})
}

func (n *QueueNotifier) NotifyReservation(ctx context.Context, record models.ReservationRecord) error {
	return n.publish(ctx, Event{
		Type:        EventReservationCreated,
		OccurredAt:  n.now().UTC(),
		Reservation: &record,
	})
}

func (n *QueueNotifier) publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}
	if err := n.channel.PublishWithContext(ctx, "", n.queue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish %s failed: %v", event.Type, err)
		return err
	}
	return nil
}

func (n *QueueNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
