package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shirshiz/studio-crm/internal/infra/http/middleware"
)

// DealClosedPayload announces that a lead transitioned to closed.
type DealClosedPayload struct {
	LeadID    string  `json:"lead_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Quote     float64 `json:"quote"`
	EventType string  `json:"event_type,omitempty"`
	ClosedAt  string  `json:"closed_at"`
}

type DealEventPublisherInterface interface {
	PublishDealClosed(ctx context.Context, payload DealClosedPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishDealClosed(ctx context.Context, payload DealClosedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing deal-closed event: %w", err)
	}

	middleware.RecordDealClosedEvent()
	return nil
}
