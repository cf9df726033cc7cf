package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SyncEvent é o registro de uma linha sincronizada (ou não). Quem consome monta o histórico.
type SyncEvent struct {
	RunID      string    `json:"run_id"`
	Mode       string    `json:"mode"`
	Key        string    `json:"key"`
	Status     string    `json:"status"`
	Code       string    `json:"code,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OdooID     int64     `json:"odoo_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// channel é o pedaço do *amqp.Channel que o producer usa
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch channel
}

func NewProducer(ch channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishSyncEvent(ctx context.Context, event SyncEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey(event.Mode),
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.RunID + ":" + event.Key,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
