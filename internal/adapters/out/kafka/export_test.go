package kafka

import (
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type MessageWriter = messageWriter

var NewWriter = newWriter

func NewPublisherWithWriter(writer MessageWriter, log *zap.Logger) *Publisher {
	return newPublisher(writer, newCircuitBreaker(log))
}

func (p *Publisher) BreakerState() gobreaker.State {
	return p.breaker.State()
}
