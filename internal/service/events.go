package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }

// NopPublisher drops every event.
func NopPublisher() EventPublisher {
	return nopPublisher{}
}

// emitter publishes events after commit. Delivery failures are logged and
// never reach the caller.
type emitter struct {
	publisher EventPublisher
	logger    *logging.Logger
}

func newEmitter(publisher EventPublisher, logger *logging.Logger) emitter {
	if publisher == nil {
		publisher = NopPublisher()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return emitter{publisher: publisher, logger: logger}
}

func (e emitter) emit(ctx context.Context, events ...domain.Event) {
	for _, ev := range events {
		if err := e.publisher.Publish(ctx, ev); err != nil {
			e.logger.Warn(ctx, "failed to publish lifecycle event",
				zap.String("event_type", string(ev.Type)),
				zap.String("entity_id", ev.EntityID.String()),
				zap.Error(err),
			)
		}
	}
}

// MessageSender is a keyed message transport such as the Kafka producer.
type MessageSender interface {
	Send(ctx context.Context, key string, message any) error
}

type brokerPublisher struct {
	sender MessageSender
}

// NewBrokerPublisher publishes events through sender keyed by entity id, so
// the events of one entity keep their order.
func NewBrokerPublisher(sender MessageSender) EventPublisher {
	return brokerPublisher{sender: sender}
}

func (p brokerPublisher) Publish(ctx context.Context, event domain.Event) error {
	return p.sender.Send(ctx, event.EntityID.String(), event)
}
