package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GVarya/MA-homework-service/pkg/logging"
)

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, key string, message any) error {
	args := m.Called(ctx, key, message)
	return args.Error(0)
}

// NewObservedLogger returns a logger whose entries at or above level are
// kept in memory for assertions.
func NewObservedLogger(level zapcore.Level) (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logging.New(zap.New(core)), logs
}
