package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"starmap-server/internal/shared/config"
)

// Init installs the process-wide default logger from the logging config
func Init(cfg config.LoggingConfig, environment string) {
	slog.SetDefault(New(os.Stdout, cfg))

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", cfg.Level,
		"json_format", cfg.JSONFormat,
		"environment", environment,
	)
}

// New builds a text or JSON logger writing to w
func New(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
