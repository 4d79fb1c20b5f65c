package events

import (
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/dbekbolat/contract-notifier/internal/model"
)

const (
	ExchangeName = "contract-events-exchange"
	QueueName    = "contract-events"
	RoutingKey   = "contract.transition"
)

// EventQueue mirrors contract transition events onto RabbitMQ for downstream
// consumers. Publishing is best-effort: the sweep is authoritative in-process
// and never waits on or aborts for the broker.
type EventQueue struct {
	Publisher *rabbitmq.Publisher
}

func NewEventQueue(ch *rabbitmq.Channel) (*EventQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(QueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare events queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the events queue: %w", err)
	}

	return &EventQueue{Publisher: rabbitmq.NewPublisher(ch, exchange.Name())}, nil
}

func (q *EventQueue) Publish(event model.TransitionEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}
