package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"gamelog/internal/config"
	"gamelog/internal/db"
	"gamelog/internal/handler"
	transport "gamelog/internal/http"
	"gamelog/internal/logger"
	"gamelog/internal/repository"
	"gamelog/internal/scheduler"
	"gamelog/internal/service"
	"gamelog/internal/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "module", "main", "action", "run", "resource", "server", "result", "failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	ids, err := snowflake.NewGenerator(cfg.NodeID)
	if err != nil {
		return err
	}
	sorter, err := service.ParseSorter(cfg.SortLocale)
	if err != nil {
		return err
	}

	slotRepo := repository.NewSlotRepository(dbConn)
	gameListRepo := repository.NewGameListRepository(slotRepo, cfg.StorageKey)

	gameStore, err := service.NewGameStore(ctx, gameListRepo, ids)
	if err != nil {
		return err
	}
	gameService := service.NewGameService(gameStore, service.NewValidator(ids), sorter)
	gameHandler := handler.NewGameHandler(gameService)

	var writeLimiter *rate.Limiter
	if cfg.WriteRate > 0 {
		writeLimiter = rate.NewLimiter(rate.Limit(cfg.WriteRate), cfg.WriteRate)
	}
	router := transport.NewRouter(gameHandler, cfg.StaticDir, writeLimiter)

	sched := scheduler.New(func(ctx context.Context) error {
		return db.Checkpoint(ctx, dbConn)
	}, cfg.CheckpointInterval)
	sched.Start()
	defer sched.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", listenLogArgs(cfg)...)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "module", "main", "action", "stop", "resource", "server", "result", "ok")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func listenLogArgs(cfg config.Config) []any {
	return []any{
		"module", "main",
		"action", "start",
		"resource", "server",
		"result", "ok",
		"app", config.AppName,
		"version", config.AppVersion,
		"addr", cfg.Addr,
		"db", cfg.DBPath,
	}
}
