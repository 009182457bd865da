package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	configs "github.com/GVarya/MA-homework-service/config"
	"github.com/GVarya/MA-homework-service/internal/handler"
	"github.com/GVarya/MA-homework-service/internal/repository"
	"github.com/GVarya/MA-homework-service/internal/server/health"
	"github.com/GVarya/MA-homework-service/internal/service"
	"github.com/GVarya/MA-homework-service/pkg/db"
	"github.com/GVarya/MA-homework-service/pkg/kafka"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := dbConfig(cfg)
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, dbCfg, db.Up); err != nil {
			log.Error(ctx, "failed to apply migrations", zap.Error(err))
			return err
		}
	}

	pool, err := db.NewPool(ctx, dbCfg)
	if err != nil {
		log.Error(ctx, "failed to connect to database", zap.Error(err))
		return err
	}
	defer pool.Close()

	store := repository.NewPostgresStore(pool)

	publisher, closePublisher, err := newPublisher(cfg.Kafka)
	if err != nil {
		log.Error(ctx, "failed to create event producer", zap.Error(err))
		return err
	}
	defer func() { _ = closePublisher() }()

	homeworkService := service.NewHomeworkService(store, publisher, log)
	solutionService := service.NewSolutionService(store, publisher, log)
	progressService := service.NewProgressService(store, log)

	worker, err := startIntake(ctx, cfg, homeworkService, progressService, log)
	if err != nil {
		log.Error(ctx, "failed to start payment consumer", zap.Error(err))
		return err
	}

	httpServer := &http.Server{
		Addr: cfg.HTTP.Address,
		Handler: handler.NewRouter(
			handler.NewHomeworkHandler(homeworkService, solutionService, progressService),
			log,
		),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	healthServer := health.NewServer(pool, cfg.GRPC.HealthInterval, log)
	listener, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		stop()
		_ = worker.Wait()
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPC.Address, err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info(ctx, "starting HTTP server", zap.String("address", cfg.HTTP.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		log.Info(ctx, "starting gRPC health server", zap.String("address", cfg.GRPC.Address))
		if err := healthServer.Serve(listener); err != nil {
			errCh <- fmt.Errorf("grpc health server: %w", err)
		}
	}()
	go healthServer.Watch(ctx)

	var runErr error
	select {
	case <-ctx.Done():
		log.Info(ctx, "shutting down")
	case runErr = <-errCh:
		log.Error(ctx, "server failed", zap.Error(runErr))
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn(shutdownCtx, "http server shutdown", zap.Error(err))
	}
	healthServer.GracefulStop()

	if err := worker.Wait(); err != nil {
		log.Warn(shutdownCtx, "payment consumer stopped with error", zap.Error(err))
	}

	log.Info(shutdownCtx, "service stopped")
	return runErr
}

// newPublisher returns the lifecycle event publisher. Without an events topic
// lifecycle events are dropped.
func newPublisher(cfg configs.KafkaConfig) (service.EventPublisher, func() error, error) {
	if cfg.EventsTopic == "" {
		return service.NopPublisher(), func() error { return nil }, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:     cfg.Brokers,
		Topic:       cfg.EventsTopic,
		MaxAttempts: 3,
	})
	if err != nil {
		return nil, nil, err
	}
	return service.NewBrokerPublisher(producer), producer.Close, nil
}
