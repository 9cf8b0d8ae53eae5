// Package observability provides structured logging for the application.
package observability

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide the application-wide structured logger.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	GlobalLogger = NewLogger("development")
}

// NewLogger creates a JSON slog logger tuned for the given environment.
// Production logs at Info; everything else includes Debug.
func NewLogger(env string) *Logger {
	level := slog.LevelDebug
	if env == "production" || env == "prod" {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}
