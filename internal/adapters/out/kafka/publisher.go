// Package kafka publishes order events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jibekjoly/internal/core/domain/model/event"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	breakerName         = "kafka-order-events"
	breakerOpenTimeout  = 30 * time.Second
	breakerTripFailures = 5
	eventTypeHeader     = "event-type"

	// writeBatchTimeout bounds how long a relay write waits for a batch to fill.
	// The relay hands the writer a whole batch at once, and the outbox rows stay
	// locked until the write returns.
	writeBatchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events to a single topic, keyed by order id so that the
// events of one order stay in one partition and keep their order.
type Publisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker
}

// envelope is the message value consumers see.
type envelope struct {
	ID          string          `json:"id"`
	Type        event.Type      `json:"type"`
	AggregateID int64           `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

func NewPublisher(brokers []string, topic string, log *zap.Logger) *Publisher {
	return newPublisher(newWriter(brokers, topic), newCircuitBreaker(log))
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: writeBatchTimeout,
	}
}

func newPublisher(writer messageWriter, breaker *gobreaker.CircuitBreaker) *Publisher {
	return &Publisher{writer: writer, breaker: breaker}
}

// newCircuitBreaker stops hammering an unavailable cluster: after five failed
// writes in a row every publish fails fast for thirty seconds.
func newCircuitBreaker(log *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    breakerName,
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
		},
	})
}

func (p *Publisher) Publish(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := toMessage(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.writer.WriteMessages(ctx, msgs...)
	})
	if err != nil {
		return fmt.Errorf("publish %d order events: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(e event.Event) (kafka.Message, error) {
	value, err := json.Marshal(envelope{
		ID:          e.ID().String(),
		Type:        e.Type(),
		AggregateID: e.AggregateID().Int64(),
		OccurredAt:  e.OccurredAt().UTC(),
		Payload:     e.Payload(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event %s: %w", e.ID(), err)
	}

	return kafka.Message{
		Key:   []byte(e.AggregateID().String()),
		Value: value,
		Time:  e.OccurredAt(),
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(e.Type())},
		},
	}, nil
}
