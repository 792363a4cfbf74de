package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dotse/slug"
	sentryslog "github.com/getsentry/sentry-go/slog"
	slogmulti "github.com/samber/slog-multi"
)

type Config struct {
	Level Level `mapstructure:"level"`
	// If set to a non-empty path, logs are written to this file instead of the console.
	File string `mapstructure:"file"`
	// Errors are forwarded to sentry when set.
	SentryDSN string `mapstructure:"sentry_dsn"`
}

type Level string

const (
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
)

// ToSlogLevel maps our levels to the equivalent slog level.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewHandler builds the fanout handler used by the default logger. Console output goes to
// console unless a log file path is configured, in which case plain text is written to the file.
//
// The returned closer must be called once logging is finished.
func NewHandler(ctx context.Context, conf Config, console io.Writer) (slog.Handler, func(), error) {
	var (
		closer = func() {}
		opts   = slug.HandlerOptions{
			HandlerOptions: slog.HandlerOptions{
				Level: ToSlogLevel(conf.Level),
			},
		}
		handlers []slog.Handler
	)

	if conf.SentryDSN != "" {
		handlers = append(handlers, sentryslog.Option{
			AddSource: true,
		}.NewSentryHandler(ctx))
	}

	if conf.File != "" {
		logFile, errLogFile := os.Create(conf.File)
		if errLogFile != nil {
			return nil, closer, fmt.Errorf("failed to open logfile: %w", errLogFile)
		}

		closer = func() {
			if errClose := logFile.Close(); errClose != nil {
				slog.Error("Failed to close log file", slog.String("error", errClose.Error()))
			}
		}

		// slug colours its output, keep files plain.
		handlers = append(handlers, slog.NewTextHandler(logFile, &opts.HandlerOptions))
	} else {
		handlers = append(handlers, slug.NewHandler(opts, console))
	}

	return slogmulti.Fanout(handlers...), closer, nil
}

// SetDefault installs handler as the global logger, tagging records with the release
// version when set.
func SetDefault(handler slog.Handler, version string) {
	defaultLogger := slog.New(handler)
	if version != "" {
		defaultLogger = defaultLogger.With(slog.String("release", version))
	}

	slog.SetDefault(defaultLogger)
}
