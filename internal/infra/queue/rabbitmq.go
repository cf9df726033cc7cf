package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/multierr"
)

const (
	ExchangeName = "ex.odoo-sync"
	QueueName    = "q.odoo-sync.results"
	DLQName      = "q.odoo-sync.results.dlq"
	DLXName      = "ex.odoo-sync.dlx" // Dead Letter Exchange
	BindingKey   = "k.sync.*"
)

// RoutingKey por modo: k.sync.import, k.sync.sync
func RoutingKey(mode string) string {
	return "k.sync." + mode
}

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, multierr.Combine(fmt.Errorf("falha ao declarar topologia: %w", err), ch.Close(), conn.Close())
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "topic", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(DLQName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(DLQName, BindingKey, DLXName, false, nil)
	if err != nil {
		return err
	}

	args := amqp.Table{
		"x-dead-letter-exchange": DLXName, // Nack de quem consome vai pra DLX
	}

	err = ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(QueueName, true, false, false, false, args)
	if err != nil {
		return err
	}

	return ch.QueueBind(QueueName, BindingKey, ExchangeName, false, nil)
}

func (r *RabbitMQ) Close() error {
	return multierr.Combine(r.Ch.Close(), r.Conn.Close())
}
