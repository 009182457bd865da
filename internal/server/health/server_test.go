package health_test

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	grpcmd "google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/GVarya/MA-homework-service/internal/server/health"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

type switchPinger struct {
	down atomic.Bool
}

func (p *switchPinger) Ping(context.Context) error {
	if p.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func startServer(t *testing.T, pinger health.Pinger) (*health.Server, grpc_health_v1.HealthClient) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := health.NewServer(pinger, time.Hour, logging.Nop())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return srv, grpc_health_v1.NewHealthClient(conn)
}

func TestHealthServer(t *testing.T) {
	pinger := &switchPinger{}
	srv, client := startServer(t, pinger)

	ctx := grpcmd.AppendToOutgoingContext(context.Background(), logging.TraceMetadataKey, "trace-1")

	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: health.PostgresService})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	pinger.down.Store(true)
	srv.Check(context.Background())

	resp, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: health.PostgresService})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	pinger.down.Store(false)
	srv.Check(context.Background())

	resp, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: health.PostgresService})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestWatchStopsOnCancel(t *testing.T) {
	srv := health.NewServer(&switchPinger{}, 5*time.Millisecond, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Watch(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}
