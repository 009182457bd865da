package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	configs "github.com/GVarya/MA-homework-service/config"
	"github.com/GVarya/MA-homework-service/internal/intake"
	"github.com/GVarya/MA-homework-service/pkg/cache"
	"github.com/GVarya/MA-homework-service/pkg/kafka"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

// IntakeWorker runs the payment consumer in the background and owns its
// broker and cache connections.
type IntakeWorker struct {
	done    chan error
	closers []func() error
	logger  *logging.Logger
}

// startIntake blocks until the payment broker answers, then starts consuming.
// It fails once ConnectAttempts pings have been refused.
func startIntake(
	ctx context.Context,
	cfg *configs.Config,
	homeworks intake.HomeworkActivator,
	progress intake.Enroller,
	logger *logging.Logger,
) (*IntakeWorker, error) {
	ping := func(ctx context.Context) error {
		return kafka.Ping(ctx, cfg.Kafka.Brokers)
	}
	if err := intake.WaitForBroker(ctx, ping, cfg.Kafka.ConnectAttempts, cfg.Kafka.ConnectDelay, logger); err != nil {
		return nil, fmt.Errorf("payment broker unreachable: %w", err)
	}

	reader, err := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.PaymentTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	if err != nil {
		return nil, err
	}

	w := &IntakeWorker{
		done:    make(chan error, 1),
		closers: []func() error{reader.Close},
		logger:  logger,
	}

	var deduper intake.Deduper
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn(ctx, "redis unavailable, payment events will not be deduplicated", zap.Error(err))
		} else {
			deduper = cache.NewRedisCache(rdb)
			w.closers = append(w.closers, rdb.Close)
		}
	}

	consumer := intake.NewConsumer(reader, homeworks, progress, deduper, logger, intakeConfig(cfg))
	go func() {
		w.done <- consumer.Run(ctx)
	}()

	logger.Info(ctx, "payment consumer running",
		zap.String("topic", cfg.Kafka.PaymentTopic),
		zap.String("group_id", cfg.Kafka.GroupID),
		zap.Bool("dedupe", deduper != nil),
	)
	return w, nil
}

// Wait blocks until the consumer has drained and closes its connections.
func (w *IntakeWorker) Wait() error {
	err := <-w.done
	for _, closeFn := range w.closers {
		err = errors.Join(err, closeFn())
	}
	return err
}

func intakeConfig(cfg *configs.Config) intake.Config {
	return intake.Config{
		WorkerPoolSize: cfg.Kafka.WorkerPoolSize,
		DedupeTTL:      cfg.Redis.DedupeTTL,
	}
}
