package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log output formats accepted by -log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// parseLogLevel accepts the slog level names, case-insensitively, with an
// optional offset such as "debug+2" or "error-1".
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}

	return level, nil
}

// parseLogFormat normalizes a -log-format value.
func parseLogFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case logFormatText, logFormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s)
	}
}

// newLogger builds a logger writing to w. It does not touch the global
// logger, so each run stays isolated.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == logFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
