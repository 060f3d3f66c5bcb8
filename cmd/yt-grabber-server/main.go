// Command yt-grabber-server exposes the download service over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/logging"
	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/probe"
	"github.com/ytget/yt-grabber/internal/server"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, logging.FormatJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := config.NewFileStore(cfg.SettingsPath)
	runner := download.NewRunner(cfg.YTDLPPath, logger.Named("runner"))
	svc := download.NewService(runner, logger.Named("service"))
	prober := probe.NewProber(cfg.YTDLPPath,
		probe.WithCookiesFile(cfg.CookiesFile),
		probe.WithTimeout(cfg.ProbeTimeout),
		probe.WithLogger(logger.Named("probe")),
		probe.WithPlaylistLister(platform.NewPlaylistLister(), platform.IsPlaylistURL),
	)

	srv := server.New(svc, prober, store, logger.Named("http"),
		server.WithAllowedOrigins(cfg.AllowedOrigins...),
	)
	httpServer := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}

	if task, ok := svc.ActiveTask(); ok {
		if err := svc.StopTask(task.ID); err != nil {
			logger.Warn("failed to stop task", zap.String("task_id", task.ID), zap.Error(err))
		}
	}
	svc.Wait()
}
