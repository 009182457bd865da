package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/GVarya/MA-homework-service/pkg/retry"
)

type Config struct {
	Brokers []string
	Topic   string
	// MaxAttempts bounds the writer's own retries of a single batch.
	MaxAttempts      int
	BreakerThreshold int
	BreakerReset     time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes JSON messages to a single topic. After BreakerThreshold
// consecutive failures it stops talking to the brokers for BreakerReset and
// fails fast with retry.ErrCircuitOpen.
type Producer struct {
	writer  messageWriter
	breaker *retry.CircuitBreaker
}

func NewProducer(cfg Config) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka producer: no brokers configured")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka producer: topic is required")
	}
	if cfg.BreakerThreshold <= 0 {
		cfg.BreakerThreshold = 5
	}
	if cfg.BreakerReset <= 0 {
		cfg.BreakerReset = 30 * time.Second
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  cfg.MaxAttempts,
		Async:        false,
	}

	return newProducer(writer, cfg.BreakerThreshold, cfg.BreakerReset), nil
}

func newProducer(w messageWriter, threshold int, reset time.Duration) *Producer {
	return &Producer{
		writer: w,
		breaker: retry.NewCircuitBreaker(threshold, reset, func(err error) bool {
			return !errors.Is(err, context.Canceled)
		}),
	}
}

// Send marshals message to JSON and writes it under key. Messages with the
// same key land in the same partition.
func (p *Producer) Send(ctx context.Context, key string, message any) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return p.breaker.Execute(func() error {
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: msgBytes,
			Time:  time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
		return nil
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
