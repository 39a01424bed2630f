package emit

import (
	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a Logger backed by the provided zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return zerologLogger{logger: logger}
}

func (l zerologLogger) WithField(key string, value any) Logger {
	return zerologLogger{logger: l.logger.With().Interface(key, value).Logger()}
}

func (l zerologLogger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

func (l zerologLogger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l zerologLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}
