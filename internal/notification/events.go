package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"

	DefaultExchange = "amenity.reservations"
)

// ReservationEvent is the message body published for every reservation change.
// The routing key equals Type.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	UserID        string    `json:"user_id"`
	AmenityID     string    `json:"amenity_id"`
	AmenityName   string    `json:"amenity_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	StatusReason  string    `json:"status_reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// EventPublisher sends reservation events to a RabbitMQ topic exchange so
// other systems (door locks, billing) can follow the booking state.
type EventPublisher struct {
	ch       publisher
	exchange string
	closers  []func() error
	logger   logger.Logger
}

func NewEventPublisher(url, exchange string, logger logger.Logger) (*EventPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &EventPublisher{
		ch:       ch,
		exchange: exchange,
		closers:  []func() error{ch.Close, conn.Close},
		logger:   logger,
	}, nil
}

func (p *EventPublisher) NotifyReservationCreated(ctx context.Context, _ *domain.User, r *domain.Reservation) {
	p.publish(ctx, EventReservationCreated, r)
}

func (p *EventPublisher) NotifyReservationStatusChanged(ctx context.Context, _ *domain.User, r *domain.Reservation) {
	p.publish(ctx, EventReservationStatusChanged, r)
}

func (p *EventPublisher) publish(ctx context.Context, eventType string, r *domain.Reservation) {
	body, err := json.Marshal(ReservationEvent{
		Type:          eventType,
		ReservationID: r.ID,
		UserID:        r.UserID,
		AmenityID:     r.AmenityID,
		AmenityName:   r.AmenityName,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        string(r.Status),
		StatusReason:  r.StatusReason,
		OccurredAt:    r.UpdatedAt,
	})
	if err != nil {
		p.logger.Error("failed to encode reservation event",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, eventType, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    r.ID + ":" + eventType + ":" + string(r.Status),
		Timestamp:    r.UpdatedAt,
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish reservation event",
			logger.String("reservation_id", r.ID),
			logger.String("event", eventType),
			logger.String("error", err.Error()),
		)
	}
}

func (p *EventPublisher) Close() error {
	var errs []error
	for _, c := range p.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
