package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationSender delivers a deal-closed notification to the studio
// owner. Implemented by the mail package.
type NotificationSender interface {
	SendDealClosed(payload DealClosedPayload) error
}

// Worker consumes deal-closed events and triggers the notification.
type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
	Log     *zap.Logger
}

func NewWorker(ch *amqp.Channel, sender NotificationSender, log *zap.Logger) *Worker {
	return &Worker{Channel: ch, Sender: sender, Log: log}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		w.Log.Fatal("registering RabbitMQ consumer", zap.Error(err))
	}

	w.Log.Info("worker waiting for deal-closed events", zap.String("queue", queueName))

	for d := range msgs {
		var payload DealClosedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Log.Error("malformed deal-closed message", zap.Error(err))
			// Poison message; reject without requeue so it dead-letters.
			d.Nack(false, false)
			continue
		}

		if err := w.Sender.SendDealClosed(payload); err != nil {
			w.Log.Error("deal-closed notification failed",
				zap.String("leadId", payload.LeadID), zap.Error(err))
			d.Nack(false, false)
			continue
		}

		w.Log.Info("deal-closed notification sent",
			zap.String("leadId", payload.LeadID), zap.Float64("quote", payload.Quote))
		d.Ack(false)
	}
}
