package main

import (
	"context"
	"log/slog"

	"github.com/schoollibrary/lendingengine/library/billing"
	"github.com/schoollibrary/lendingengine/library/directory/memdirectory"
	"github.com/schoollibrary/lendingengine/library/directory/redisdirectory"
	"github.com/schoollibrary/lendingengine/library/engine"
	"github.com/schoollibrary/lendingengine/library/shared/shell"
	"github.com/schoollibrary/lendingengine/library/shared/shell/config"
)

type directory interface {
	shell.MemberDirectory
	shell.SectionDirectory
}

// openEngine wires the engine from cfg. close releases everything it opened, in reverse order.
func openEngine(ctx context.Context, cfg config.Config, logger *slog.Logger) (*engine.Engine, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	store, err := cfg.OpenEventStore(ctx, logger, true)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("closing the event store failed", shell.LogAttrError, closeErr.Error())
		}
	})

	dir, closeDir, err := openDirectory(ctx, cfg, logger)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	closers = append(closers, closeDir)

	observability := engine.Observability{Logger: logger}
	if cfg.Observability {
		telemetry, telemetryErr := newTelemetry(ctx, logger)
		if telemetryErr != nil {
			closeAll()
			return nil, nil, telemetryErr
		}
		closers = append(closers, func() {
			if shutdownErr := telemetry.Shutdown(context.Background()); shutdownErr != nil {
				logger.Warn("shutting down telemetry failed", shell.LogAttrError, shutdownErr.Error())
			}
		})
		observability = telemetry.Observability
	}

	e, err := engine.New(
		engine.Dependencies{
			EventStore:   store,
			Members:      dir,
			Sections:     dir,
			Fees:         billing.NewLogSink(logger, billing.NewRecorder()),
			Policy:       cfg.LoanPolicy(),
			RetryOptions: cfg.RetryOptions(),
		},
		engine.WithObservability(observability),
	)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	return e, closeAll, nil
}

// openDirectory prefers Redis, then a seed file. Without either every member is unknown.
func openDirectory(ctx context.Context, cfg config.Config, logger *slog.Logger) (directory, func(), error) {
	if cfg.RedisAddr != "" {
		redisDir, err := redisdirectory.Connect(ctx, redisOptions(cfg))
		if err != nil {
			return nil, nil, err
		}

		logger.Info("using redis member directory", "addr", cfg.RedisAddr)

		return redisDir, func() { _ = redisDir.Close() }, nil
	}

	if cfg.DirectoryFile != "" {
		fileDir, err := memdirectory.LoadFile(cfg.DirectoryFile)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("using in-memory member directory", "file", cfg.DirectoryFile)

		return fileDir, func() {}, nil
	}

	logger.Warn("no member directory configured, all members are unknown")

	return memdirectory.New(nil, nil), func() {}, nil
}

func redisOptions(cfg config.Config) redisdirectory.Options {
	return redisdirectory.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}
