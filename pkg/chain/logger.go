package chain

import (
	"cosmossdk.io/log"
	"go.uber.org/zap"
)

// zapLogger lets keepers log through the node's zap logger using the
// key/value style of cosmossdk.io/log.
type zapLogger struct {
	s *zap.SugaredLogger
}

var _ log.Logger = zapLogger{}

// NewLogger wraps a zap logger as a cosmos logger. A nil logger discards.
func NewLogger(logger *zap.Logger) log.Logger {
	if logger == nil {
		return log.NewNopLogger()
	}
	return zapLogger{s: logger.Sugar()}
}

func (l zapLogger) Info(msg string, keyVals ...any) { l.s.Infow(msg, keyVals...) }

func (l zapLogger) Warn(msg string, keyVals ...any) { l.s.Warnw(msg, keyVals...) }

func (l zapLogger) Error(msg string, keyVals ...any) { l.s.Errorw(msg, keyVals...) }

func (l zapLogger) Debug(msg string, keyVals ...any) { l.s.Debugw(msg, keyVals...) }

func (l zapLogger) With(keyVals ...any) log.Logger { return zapLogger{s: l.s.With(keyVals...)} }

func (l zapLogger) Impl() any { return l.s.Desugar() }
