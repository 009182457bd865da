package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return New(zap.New(core)), logs
}

func TestLoggerAddsTraceID(t *testing.T) {
	logger, logs := observed(zapcore.DebugLevel)

	ctx := WithTraceID(context.Background(), "trace-42")
	logger.Info(ctx, "with trace", zap.String("k", "v"))
	logger.Warn(context.Background(), "without trace")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "trace-42", entries[0].ContextMap()[traceIDField])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.NotContains(t, entries[1].ContextMap(), traceIDField)
}

func TestTraceID(t *testing.T) {
	_, ok := TraceID(context.Background())
	assert.False(t, ok)

	_, ok = TraceID(WithTraceID(context.Background(), ""))
	assert.False(t, ok, "empty id is not a trace id")

	id, ok := TraceID(WithTraceID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestLoggerWith(t *testing.T) {
	logger, logs := observed(zapcore.InfoLevel)

	logger.With(zap.String("component", "intake")).Error(context.Background(), "failed")
	logger.Debug(context.Background(), "filtered out")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "intake", entries[0].ContextMap()["component"])
}

func TestContextLogger(t *testing.T) {
	_, ok := GetFromContext(context.Background())
	assert.False(t, ok)

	logger := Nop()
	got, ok := GetFromContext(ContextWithLogger(context.Background(), logger))
	require.True(t, ok)
	assert.Same(t, logger, got)
}

func TestNewZap(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		z, err := NewZap(level)
		require.NoError(t, err, level)
		assert.NotNil(t, z)
	}

	_, err := NewZap("loud")
	assert.Error(t, err)
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	logger, logs := observed(zapcore.DebugLevel)
	interceptor := NewUnaryLoggingInterceptor(logger)
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, _ any) (any, error) {
		_, ok := GetFromContext(ctx)
		assert.True(t, ok, "handler sees the logger in its context")
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, 1, logs.FilterMessage("request handled").Len())

	boom := errors.New("boom")
	_, err = interceptor(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	failed := logs.FilterMessage("request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
}

func TestTraceUnaryInterceptor(t *testing.T) {
	interceptor := NewTraceUnaryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var got string
	var found bool
	handler := func(ctx context.Context, _ any) (any, error) {
		got, found = TraceID(ctx)
		return nil, nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(TraceMetadataKey, "abc"))
	_, _ = interceptor(ctx, nil, info, handler)
	assert.True(t, found)
	assert.Equal(t, "abc", got)

	_, _ = interceptor(context.Background(), nil, info, handler)
	assert.False(t, found)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(TraceMetadataKey, ""))
	_, _ = interceptor(ctx, nil, info, handler)
	assert.False(t, found)
}
