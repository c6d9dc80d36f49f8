package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger adapts a '*slog.Logger' so that it may be used as a 'Logger'.
type SlogLogger struct {
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a Logger which forwards to the given slog logger, using the default slog logger if nil.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

func (s *SlogLogger) Log(level Level, format string, args ...any) {
	s.logger.Log(context.Background(), slogLevel(level), fmt.Sprintf(format, args...))
}

// slogLevel maps our levels onto the closest slog level, trace is treated as debug and panic as error.
func slogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace, LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
