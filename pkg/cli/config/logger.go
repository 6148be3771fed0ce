// Package config defines the CLI flag groups. Each group owns its flags and
// knows how to build the component it configures.
package config

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds configuration for the application logger
type Logger struct {
	level     string
	format    string
	output    string
	noColor   bool
	sentryDSN string
}

// Flags returns CLI flags for logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("FRONTDESK_LOG_LEVEL"),
			Destination: &l.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Value:       "console",
			Sources:     cli.EnvVars("FRONTDESK_LOG_FORMAT"),
			Destination: &l.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination (stdout, stderr or file path)",
			Value:       "stdout",
			Sources:     cli.EnvVars("FRONTDESK_LOG_OUTPUT"),
			Destination: &l.output,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colorized console output",
			Sources:     cli.EnvVars("FRONTDESK_NO_COLOR"),
			Destination: &l.noColor,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (disabled when empty)",
			Sources:     cli.EnvVars("FRONTDESK_SENTRY_DSN"),
			Destination: &l.sentryDSN,
		},
	}
}

// LogValue renders the logger configuration for startup logs.
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.level),
		slog.String("format", l.format),
		slog.String("output", l.output),
		slog.Bool("sentry", l.sentryDSN != ""),
	)
}

// Configure builds the default logger from the flags and installs it. The
// returned closer flushes file output and Sentry events.
func (l *Logger) Configure() (func(), error) {
	level, err := logging.ParseLevel(l.level)
	if err != nil {
		return nil, err
	}

	var format logging.Format
	switch l.format {
	case "console":
		format = logging.FormatConsole
	case "json":
		format = logging.FormatJSON
	default:
		return nil, goerr.New("invalid log format", goerr.V("format", l.format))
	}

	var w io.Writer
	var file *os.File
	switch l.output {
	case "stdout", "-":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		// #nosec G304 - path comes from the operator's own CLI flag
		f, err := os.OpenFile(l.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.output))
		}
		file = f
		w = f
	}

	enableColor := !l.noColor && file == nil

	logger, err := logging.New(w, level, format, enableColor)
	if err != nil {
		return nil, err
	}
	logging.SetDefault(logger)

	sentryEnabled := false
	if l.sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: l.sentryDSN}); err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sentry")
		}
		sentryEnabled = true
	}

	return func() {
		if sentryEnabled {
			sentry.Flush(2 * time.Second)
		}
		if file != nil {
			_ = file.Close()
		}
	}, nil
}
