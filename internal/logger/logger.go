package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ardenpalme/app/internal/config/configs"
)

// New builds the application logger. Records always go to stdout in the
// configured format. A rotating JSON file and Sentry (errors only) are
// added when configured; every record carries the env attribute.
//
// The returned func flushes Sentry and closes the log file.
func New(cfg configs.Logger, env string) (*slog.Logger, func(), error) {
	return build(cfg, env, os.Stdout)
}

func build(cfg configs.Logger, env string, stdout io.Writer) (*slog.Logger, func(), error) {
	var (
		level    = cfg.SlogLevel()
		opts     = &slog.HandlerOptions{Level: level}
		handlers []slog.Handler
		closers  []func()
	)

	switch cfg.SlogFormat() {
	case "json":
		handlers = append(handlers, slog.NewJSONHandler(stdout, opts))
	default:
		handlers = append(handlers, slog.NewTextHandler(stdout, opts))
	}

	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.FileMaxMB,
			MaxAge:   cfg.FileMaxAge,
			Compress: true,
		}
		handlers = append(handlers, slog.NewJSONHandler(file, opts))
		closers = append(closers, func() { _ = file.Close() })
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: env,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init sentry: %w", err)
		}
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		closers = append(closers, func() { sentry.Flush(2 * time.Second) })
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	log := slog.New(handler)
	if env != "" {
		log = log.With(slog.String("env", env))
	}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return log, cleanup, nil
}
