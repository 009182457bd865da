package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GVarya/MA-homework-service/internal/errdefs"
	"github.com/GVarya/MA-homework-service/pkg/logging"
	"github.com/GVarya/MA-homework-service/pkg/retry"
)

// PaymentEvent is the payload published by billing when a student's payment
// for a course succeeds.
type PaymentEvent struct {
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type Config struct {
	WorkerPoolSize int
	DedupeTTL      time.Duration
	// ProcessAttempts bounds retries of infrastructure failures while
	// handling one message. Domain errors are never retried.
	ProcessAttempts int
	ProcessBackoff  time.Duration
	ProcessTimeout  time.Duration
	// FetchBackoff is the pause after a failed fetch before trying again.
	FetchBackoff time.Duration
}

func (c *Config) setDefaults() {
	if c.WorkerPoolSize <= 0 {
		c.WorkerPoolSize = 1
	}
	if c.DedupeTTL <= 0 {
		c.DedupeTTL = 24 * time.Hour
	}
	if c.ProcessAttempts <= 0 {
		c.ProcessAttempts = 3
	}
	if c.ProcessBackoff <= 0 {
		c.ProcessBackoff = 200 * time.Millisecond
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = 30 * time.Second
	}
	if c.FetchBackoff <= 0 {
		c.FetchBackoff = time.Second
	}
}

// Consumer turns payment events into homework activations. Every message is
// committed once handled, whatever the outcome.
type Consumer struct {
	reader    MessageReader
	homeworks HomeworkActivator
	progress  Enroller
	deduper   Deduper
	logger    *logging.Logger
	validate  *validator.Validate
	cfg       Config
}

// NewConsumer builds a consumer. deduper may be nil, in which case every
// delivery is processed.
func NewConsumer(
	reader MessageReader,
	homeworks HomeworkActivator,
	progress Enroller,
	deduper Deduper,
	logger *logging.Logger,
	cfg Config,
) *Consumer {
	cfg.setDefaults()
	if logger == nil {
		logger = logging.Nop()
	}
	return &Consumer{
		reader:    reader,
		homeworks: homeworks,
		progress:  progress,
		deduper:   deduper,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

type inflight struct {
	msg  kafka.Message
	done chan struct{}
}

// Run fetches messages until ctx is cancelled. Up to WorkerPoolSize messages
// are handled at a time; offsets are committed in fetch order. Messages
// already fetched are finished and committed before Run returns.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info(ctx, "payment consumer started", zap.Int("workers", c.cfg.WorkerPoolSize))

	work := context.WithoutCancel(ctx)
	pending := make(chan inflight, c.cfg.WorkerPoolSize)
	slots := make(chan struct{}, c.cfg.WorkerPoolSize)

	var committer sync.WaitGroup
	committer.Add(1)
	go func() {
		defer committer.Done()
		for f := range pending {
			<-f.done
			if err := c.reader.CommitMessages(work, f.msg); err != nil {
				c.logger.Error(ctx, "failed to commit message",
					zap.Int("partition", f.msg.Partition),
					zap.Int64("offset", f.msg.Offset),
					zap.Error(err),
				)
			}
		}
	}()

	var runErr error
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			if errors.Is(err, io.EOF) {
				runErr = err
				break
			}
			c.logger.Error(ctx, "failed to fetch message", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(c.cfg.FetchBackoff):
			}
			continue
		}

		slots <- struct{}{}
		f := inflight{msg: msg, done: make(chan struct{})}
		pending <- f

		go func() {
			defer func() {
				<-slots
				close(f.done)
			}()
			c.Handle(work, f.msg)
		}()
	}

	close(pending)
	committer.Wait()

	c.logger.Info(ctx, "payment consumer stopped")
	return runErr
}

// Handle processes a single delivery. Malformed payloads, duplicates and
// processing failures are logged and dropped.
func (c *Consumer) Handle(ctx context.Context, msg kafka.Message) {
	key := dedupeKey(msg)
	ctx = logging.WithTraceID(ctx, key)
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ProcessTimeout)
	defer cancel()

	var event PaymentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Warn(ctx, "failed to unmarshal payment event",
			zap.ByteString("value", msg.Value),
			zap.Error(err),
		)
		return
	}
	if err := c.validate.Struct(event); err != nil {
		c.logger.Warn(ctx, "invalid payment event",
			zap.ByteString("value", msg.Value),
			zap.Error(err),
		)
		return
	}

	claimed := false
	if c.deduper != nil {
		ok, err := c.deduper.Claim(ctx, key, c.cfg.DedupeTTL)
		switch {
		case err != nil:
			c.logger.Warn(ctx, "dedupe unavailable, processing anyway", zap.Error(err))
		case !ok:
			c.logger.Info(ctx, "duplicate payment event skipped")
			return
		default:
			claimed = true
		}
	}

	fields := []zap.Field{
		zap.String("course_id", event.CourseID.String()),
		zap.String("student_id", event.StudentID.String()),
	}

	activated, err := retry.RetryWithBackoff(ctx, c.cfg.ProcessAttempts, c.cfg.ProcessBackoff, transient,
		func() (int, error) {
			return c.process(ctx, event)
		})
	if err != nil {
		c.logger.Error(ctx, "failed to process payment event", append(fields, zap.Error(err))...)
		if claimed {
			if err := c.deduper.Release(context.WithoutCancel(ctx), key); err != nil {
				c.logger.Warn(ctx, "failed to release dedupe key", zap.Error(err))
			}
		}
		return
	}

	c.logger.Info(ctx, "payment event processed", append(fields, zap.Int("activated", activated))...)
}

func (c *Consumer) process(ctx context.Context, event PaymentEvent) (int, error) {
	activated, err := c.homeworks.ActivateByCourse(ctx, event.CourseID)
	if err != nil {
		return 0, fmt.Errorf("activate course homeworks: %w", err)
	}
	if _, err := c.progress.Enroll(ctx, event.StudentID, event.CourseID); err != nil {
		return 0, fmt.Errorf("enroll student: %w", err)
	}
	return len(activated), nil
}

func transient(err error) bool {
	if errdefs.IsDomain(err) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func dedupeKey(msg kafka.Message) string {
	return fmt.Sprintf("payment:%s:%d:%d", msg.Topic, msg.Partition, msg.Offset)
}

// WaitForBroker calls ping until it succeeds, at most attempts times with
// delay between calls.
func WaitForBroker(
	ctx context.Context,
	ping func(ctx context.Context) error,
	attempts int,
	delay time.Duration,
	logger *logging.Logger,
) error {
	return retry.RetryFixed(ctx, attempts, delay, func() error {
		return ping(ctx)
	}, func(attempt int, err error) {
		logger.Warn(ctx, "broker not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	})
}
