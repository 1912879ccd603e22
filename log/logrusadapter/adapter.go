// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pgkit/typereg"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level typereg.LogLevel, msg string, data map[string]interface{}) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case typereg.LogLevelTrace:
		logger.WithField("TYPEREG_LOG_LEVEL", level).Debug(msg)
	case typereg.LogLevelDebug:
		logger.Debug(msg)
	case typereg.LogLevelInfo:
		logger.Info(msg)
	case typereg.LogLevelWarn:
		logger.Warn(msg)
	case typereg.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_TYPEREG_LOG_LEVEL", level).Error(msg)
	}
}
