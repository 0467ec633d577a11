package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"jibekjoly/internal/adapters/out/kafka"
	"jibekjoly/internal/core/domain/model/event"
	"jibekjoly/internal/core/domain/model/kernel"

	segmentio "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []segmentio.Message
	calls   int
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...segmentio.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newEvent(t *testing.T, typ event.Type, orderID kernel.ID) event.Event {
	t.Helper()
	e, err := event.New(typ, orderID, map[string]string{"status": "in_transit"},
		time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return e
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := kafka.NewPublisherWithWriter(writer, zap.NewNop())

	claimed := newEvent(t, event.OrderClaimed, 100)
	delivered := newEvent(t, event.OrderDelivered, 100)

	require.NoError(t, publisher.Publish(context.Background(), claimed, delivered))

	require.Len(t, writer.written, 2)
	msg := writer.written[0]
	assert.Equal(t, "100", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "order.claimed", string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, claimed.ID().String(), body["id"])
	assert.Equal(t, "order.claimed", body["type"])
	assert.InDelta(t, 100, body["aggregate_id"], 0)
	assert.Equal(t, "2026-05-04T09:30:00Z", body["occurred_at"])
	assert.Equal(t, map[string]any{"status": "in_transit"}, body["payload"])
}

func TestPublisher_PublishNothing(t *testing.T) {
	writer := &fakeWriter{}
	publisher := kafka.NewPublisherWithWriter(writer, zap.NewNop())

	require.NoError(t, publisher.Publish(context.Background()))
	assert.Zero(t, writer.calls)
}

func TestPublisher_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	brokerDown := errors.New("dial tcp: connection refused")
	writer := &fakeWriter{err: brokerDown}
	publisher := kafka.NewPublisherWithWriter(writer, zap.NewNop())
	e := newEvent(t, event.OrderCreated, 7)

	for range 5 {
		err := publisher.Publish(context.Background(), e)
		require.ErrorIs(t, err, brokerDown)
	}
	assert.Equal(t, gobreaker.StateOpen, publisher.BreakerState())

	err := publisher.Publish(context.Background(), e)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, writer.calls, "an open breaker does not reach the broker")
}

func TestNewWriter_FlushesBatchesPromptly(t *testing.T) {
	w := kafka.NewWriter([]string{"localhost:9092"}, "orders")

	assert.Equal(t, "orders", w.Topic)
	assert.Equal(t, segmentio.RequireAll, w.RequiredAcks)
	assert.Positive(t, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, 100*time.Millisecond)
}
