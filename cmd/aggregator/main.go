package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rkl-hq/season-engine/internal/app"
	"github.com/rkl-hq/season-engine/internal/config"
	"github.com/rkl-hq/season-engine/internal/observability"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
	"github.com/rkl-hq/season-engine/internal/usecase"
)

func main() {
	seasonFlag := flag.String("season", "", "recompute the given season id (comma separated for several) and exit")
	workersFlag := flag.Int("workers", 0, "worker count for -season recompute")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = stopProfiler()
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = application.Close()
	}()

	if *seasonFlag != "" {
		if err := runOneShot(application, *seasonFlag, *workersFlag, logger); err != nil {
			os.Exit(1)
		}
		return
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		logger.Error("stop pprof server failed", "error", err)
	}

	logger.Info("http server stopped")
}

// runOneShot recomputes the requested seasons and exits, for cron-style use.
func runOneShot(application *app.App, seasons string, workers int, logger *logging.Logger) error {
	seasonIDs := make([]string, 0, 4)
	for _, id := range strings.Split(seasons, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			seasonIDs = append(seasonIDs, trimmed)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := application.Recompute.RunSeasons(ctx, usecase.RecomputeInput{
		SeasonIDs:  seasonIDs,
		MaxWorkers: workers,
	})
	if err != nil {
		logger.Error("one-shot recompute failed", "error", err)
		return err
	}

	logger.Info("one-shot recompute finished",
		"run_id", result.RunID,
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	if result.FailedCount > 0 {
		return errors.New("one or more seasons failed")
	}
	return nil
}
