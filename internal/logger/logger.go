package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/treasure-hunter/internal/config"
)

// Setup configures the global slog logger based on environment. Output goes
// to w; use Open to pick w from the config.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Open returns the writer named by cfg.LogFile, appending to it. An empty
// LogFile discards output. The returned close func is always non-nil.
func Open(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.LogFile == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}

// WithGameID adds the hunt's ID to logger context
func WithGameID(logger *slog.Logger, gameID string) *slog.Logger {
	return logger.With("game_id", gameID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
