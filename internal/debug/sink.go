package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sink receives informational and debug messages at decision points.
type Sink interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type nopSink struct{}

func (nopSink) Debugf(string, ...any) {}
func (nopSink) Infof(string, ...any)  {}

// Nop returns a Sink that discards everything.
func Nop() Sink {
	return nopSink{}
}

// SlogSink forwards messages to a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns a Sink that writes through logger.
// A nil logger uses slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger.With("component", "notch")}
}

// Debugf logs a formatted message at debug level.
func (s *SlogSink) Debugf(format string, args ...any) {
	s.log(slog.LevelDebug, format, args...)
}

// Infof logs a formatted message at info level.
func (s *SlogSink) Infof(format string, args ...any) {
	s.log(slog.LevelInfo, format, args...)
}

func (s *SlogSink) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, level) {
		return
	}
	s.logger.Log(ctx, level, fmt.Sprintf(format, args...))
}

// NewLogger builds a slog.Logger writing to w.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
