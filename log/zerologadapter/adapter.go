// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pgkit/pgcodec"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom
// pgcodec logging facade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "pgcodec").Logger(),
	}
}

func (pl *Logger) Log(ctx context.Context, level pgcodec.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case pgcodec.LogLevelNone:
		zlevel = zerolog.NoLevel
	case pgcodec.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case pgcodec.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case pgcodec.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	log := pl.logger.With().Fields(data).Logger()
	log.WithLevel(zlevel).Msg(msg)
}
