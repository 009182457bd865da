package health

import (
	"context"
	"net"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/GVarya/MA-homework-service/pkg/logging"
)

const PostgresService = "postgres"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes grpc.health.v1 and keeps the postgres service status in
// line with the database's reachability.
type Server struct {
	grpc     *grpc.Server
	health   *grpchealth.Server
	db       Pinger
	interval time.Duration
	logger   *logging.Logger
}

func NewServer(db Pinger, interval time.Duration, logger *logging.Logger) *Server {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	interceptor := grpc_middleware.ChainUnaryServer(
		logging.NewTraceUnaryInterceptor(),
		logging.NewUnaryLoggingInterceptor(logger),
	)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(interceptor))

	healthServer := grpchealth.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(PostgresService, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		grpc:     grpcServer,
		health:   healthServer,
		db:       db,
		interval: interval,
		logger:   logger,
	}
}

func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Watch pings the database every interval until ctx is done.
func (s *Server) Watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

func (s *Server) Check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.db.Ping(pingCtx); err != nil {
		s.logger.Warn(ctx, "database ping failed", zap.Error(err))
		s.health.SetServingStatus(PostgresService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.health.SetServingStatus(PostgresService, grpc_health_v1.HealthCheckResponse_SERVING)
}

// GracefulStop marks every service as not serving and stops the server.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
