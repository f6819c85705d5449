package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/ardenpalme/app/internal/adapter/http"
	"github.com/ardenpalme/app/internal/adapter/media"
	"github.com/ardenpalme/app/internal/adapter/postgres"
	"github.com/ardenpalme/app/internal/adapter/s3"
	"github.com/ardenpalme/app/internal/adapter/usecase"
	"github.com/ardenpalme/app/internal/config"
	"github.com/ardenpalme/app/internal/db"
	"github.com/ardenpalme/app/internal/logger"
)

// main is the entry point of the creative library service. It loads
// configuration, optionally runs database migrations, connects to
// PostgreSQL and object storage, then starts the HTTP server. On receiving
// a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	log, flush, err := logger.New(cfg.Log, cfg.Env)
	if err != nil {
		slog.Error("failed to init logger", slog.Any("error", err))
		return
	}
	defer flush()
	slog.SetDefault(log)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			log.Error("migration error", slog.Any("error", err))
			return
		}
		log.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql, log)
	if err != nil {
		log.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			log.Error("seed error", slog.Any("error", err))
			return
		}
		log.Info("demo campaigns seeded")
	}

	storage, err := s3.New(ctx, cfg.Storage)
	if err != nil {
		log.Error("object storage error", slog.Any("error", err))
		return
	}

	assets := usecase.NewAssetUseCase(postgres.NewCreativeRepository(pool))
	campaigns := usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool))
	workflow := usecase.NewWorkflowUseCase(
		assets,
		campaigns,
		storage,
		media.New(cfg.Media),
		cfg.Storage.ThumbnailPrefix,
		log,
	)

	handler := httpadapter.NewHandler(assets, campaigns, workflow, cfg.HTTP, log,
		httpadapter.ReadinessCheck{Name: "postgres", Check: pool.Ping},
		httpadapter.ReadinessCheck{Name: "storage", Check: storage.Ping},
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		log.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		log.Info("server gracefully stopped")
	}
}
