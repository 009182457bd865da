package logging

import (
	"context"

	"google.golang.org/grpc/metadata"
)

const (
	// TraceMetadataKey is the gRPC metadata key callers use to pass a trace id.
	TraceMetadataKey = "x-trace-id"

	traceIDField = "trace_id"
)

type traceIDKey struct{}

// WithTraceID tags ctx so that entries logged with it carry id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

func TraceID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(traceIDKey{}).(string)
	return id, ok && id != ""
}

func traceIDFromMetadata(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(TraceMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
