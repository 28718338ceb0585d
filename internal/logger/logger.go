// Package logger builds the slog logger used by dactl and bridges it to the
// client's RequestLogger interface.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger writing to w with level taken from LOG_LEVEL
// (default info).
func New(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(env)); err == nil {
			level = parsed
		}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// RequestLogger adapts a *slog.Logger to client.RequestLogger.
type RequestLogger struct {
	log *slog.Logger
}

func NewRequestLogger(log *slog.Logger) *RequestLogger {
	return &RequestLogger{log: log.With("component", "directadmin-client")}
}

func (l *RequestLogger) Errorf(format string, v ...any) {
	l.log.Error(message(format, v))
}

func (l *RequestLogger) Warnf(format string, v ...any) {
	l.log.Warn(message(format, v))
}

func (l *RequestLogger) Debugf(format string, v ...any) {
	l.log.Debug(message(format, v))
}

// resty terminates its messages with a newline.
func message(format string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
