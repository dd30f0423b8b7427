package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/talx-hub/nexus-sdk/internal/model"
)

func New(logLevel slog.Level) *slog.Logger {
	return slog.New(
		slog.NewTextHandler(
			os.Stdout,
			&slog.HandlerOptions{Level: logLevel},
		))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	ctxWithLogger := context.WithValue(ctx, model.KeyContextLogger, log)
	return ctxWithLogger
}

// FromContext returns the logger carried by ctx, or fallback when there is none.
// A nil fallback means slog.Default().
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if fallback == nil {
		fallback = slog.Default()
	}
	logRaw := ctx.Value(model.KeyContextLogger)
	if logRaw == nil {
		return fallback
	}
	if log, ok := logRaw.(*slog.Logger); ok {
		return log
	}
	return fallback
}
