// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pgkit/pgcodec"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (pl *Logger) Log(ctx context.Context, level pgcodec.LogLevel, msg string, data map[string]interface{}) {
	fields := make([]zapcore.Field, 0, len(data))
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}

	switch level {
	case pgcodec.LogLevelTrace:
		pl.logger.Debug(msg, append(fields, zap.Stringer("PGCODEC_LOG_LEVEL", level))...)
	case pgcodec.LogLevelDebug:
		pl.logger.Debug(msg, fields...)
	case pgcodec.LogLevelInfo:
		pl.logger.Info(msg, fields...)
	case pgcodec.LogLevelWarn:
		pl.logger.Warn(msg, fields...)
	case pgcodec.LogLevelError:
		pl.logger.Error(msg, fields...)
	default:
		pl.logger.Error(msg, append(fields, zap.Stringer("INVALID_PGCODEC_LOG_LEVEL", level))...)
	}
}
