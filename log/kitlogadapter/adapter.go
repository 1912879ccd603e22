package kitlogadapter

import (
	"context"

	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"

	"github.com/pgkit/typereg"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level typereg.LogLevel, msg string, data map[string]interface{}) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case typereg.LogLevelTrace:
		logger.Log("TYPEREG_LOG_LEVEL", level, "msg", msg)
	case typereg.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case typereg.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case typereg.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case typereg.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_TYPEREG_LOG_LEVEL", level, "error", msg)
	}
}
