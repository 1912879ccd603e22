// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pgkit/typereg"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom typereg
// logging fascade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "typereg").Logger(),
	}
}

func (l *Logger) Log(ctx context.Context, level typereg.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case typereg.LogLevelNone:
		zlevel = zerolog.NoLevel
	case typereg.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case typereg.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case typereg.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case typereg.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	zlog := l.logger.With().Fields(data).Logger()
	zlog.WithLevel(zlevel).Msg(msg)
}
