package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
)

// NewTraceUnaryInterceptor copies the caller's x-trace-id metadata into the
// request context.
func NewTraceUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if id, ok := traceIDFromMetadata(ctx); ok {
			ctx = WithTraceID(ctx, id)
		}
		return handler(ctx, req)
	}
}

// NewUnaryLoggingInterceptor puts logger in the handler's context and logs
// each call. Failed calls are logged at error level.
func NewUnaryLoggingInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		peerAddr := "unknown"
		if p, ok := peer.FromContext(ctx); ok {
			peerAddr = p.Addr.String()
		}

		resp, err := handler(ContextWithLogger(ctx, logger), req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("peer", peerAddr),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Error(ctx, "request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug(ctx, "request handled", fields...)
		}
		return resp, err
	}
}
