// Package kitlogadapter provides a logger that writes to a
// github.com/go-kit/log.Logger.
package kitlogadapter

import (
	"context"

	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"

	"github.com/pgkit/pgcodec"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level pgcodec.LogLevel, msg string, data map[string]interface{}) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case pgcodec.LogLevelTrace:
		logger.Log("PGCODEC_LOG_LEVEL", level, "msg", msg)
	case pgcodec.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case pgcodec.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case pgcodec.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case pgcodec.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_PGCODEC_LOG_LEVEL", level, "error", msg)
	}
}
