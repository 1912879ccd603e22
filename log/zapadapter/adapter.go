// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pgkit/typereg"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (l *Logger) Log(ctx context.Context, level typereg.LogLevel, msg string, data map[string]interface{}) {
	fields := make([]zapcore.Field, len(data))
	i := 0
	for k, v := range data {
		fields[i] = zap.Any(k, v)
		i++
	}

	switch level {
	case typereg.LogLevelTrace:
		l.logger.Debug(msg, append(fields, zap.Stringer("TYPEREG_LOG_LEVEL", level))...)
	case typereg.LogLevelDebug:
		l.logger.Debug(msg, fields...)
	case typereg.LogLevelInfo:
		l.logger.Info(msg, fields...)
	case typereg.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	case typereg.LogLevelError:
		l.logger.Error(msg, fields...)
	default:
		l.logger.Error(msg, append(fields, zap.Stringer("INVALID_TYPEREG_LOG_LEVEL", level))...)
	}
}
