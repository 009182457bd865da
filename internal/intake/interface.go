package intake

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

//go:generate mockgen -source=interface.go -destination=mocks/mocks.go -package=mocks

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Deduper remembers which deliveries were already handled.
type Deduper interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type HomeworkActivator interface {
	ActivateByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error)
}

type Enroller interface {
	Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*domain.Progress, error)
}
