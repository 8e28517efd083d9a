// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// orderChangedEvent is the wire form of an order lifecycle event.
type orderChangedEvent struct {
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	Total        int       `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// OrderChangedPublisher emits order-changed events through a synchronous
// Kafka producer. Events are keyed by order id so all changes of one order
// land in the same partition, in order.
//
// Publishing is best-effort: failures are logged and swallowed, because an
// order operation must never fail on a broker outage.
type OrderChangedPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderChangedPublisher creates a publisher connected to the given
// brokers (comma-separated list).
func NewOrderChangedPublisher(
	brokerList string,
	topic string,
	logger *slog.Logger,
) (*OrderChangedPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(strings.Split(brokerList, ","), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &OrderChangedPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// PublishOrderChanged emits an event for the order's current state.
func (p *OrderChangedPublisher) PublishOrderChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderChangedEvent{
		OrderID:      aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total(),
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.logger.Warn("failed to publish order-changed event",
			"order_id", event.OrderID, "status", event.Status, "error", err)
		return err
	}

	return nil
}

// Close shuts the underlying producer down.
func (p *OrderChangedPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher discards all events. Used when Kafka is not configured.
type NoopPublisher struct{}

// PublishOrderChanged does nothing.
func (NoopPublisher) PublishOrderChanged(_ context.Context, _ *order.Order) error {
	return nil
}
