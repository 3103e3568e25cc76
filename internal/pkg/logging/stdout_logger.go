package logging

import (
	"log/slog"
	"os"
	"strings"
)

//go:generate mockgen -destination=../../../gen/mocks/logging/logger_mock.go -package=mocks . Logger

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

var StdoutLogger = NewStdoutLogger("info")

// NewStdoutLogger builds a text logger; unknown levels fall back to info.
func NewStdoutLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
