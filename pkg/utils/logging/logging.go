package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format is the output format of the logger
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

var (
	defaultLogger = slog.Default()
	defaultMutex  sync.RWMutex
)

// Default returns the process-wide default logger
func Default() *slog.Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *slog.Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

type ctxKey struct{}

// With returns a new context carrying the given logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From returns the logger carried by ctx, or the default logger
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}

// New builds a logger writing to w. Fields tagged `masq:"secret"` are
// redacted before they reach any sink.
func New(w io.Writer, level slog.Level, format Format, enableColor bool) (*slog.Logger, error) {
	filter := masq.New(masq.WithTag("secret"))

	var handler slog.Handler
	switch format {
	case FormatConsole:
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColor(enableColor),
			clog.WithReplaceAttr(filter),
		)

	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})

	default:
		return nil, goerr.New("unknown log format", goerr.V("format", format))
	}

	return slog.New(handler), nil
}

// ParseLevel converts a level name into a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}
