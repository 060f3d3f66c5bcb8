package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/logging"
	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/probe"
	"github.com/ytget/yt-grabber/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-grabber"
	AppName = "YT Grabber"

	WindowWidth  = 860
	WindowHeight = 680
)

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, logging.FormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	store := config.NewFileStore(cfg.SettingsPath)
	runner := download.NewRunner(cfg.YTDLPPath, logger.Named("runner"))
	downloadSvc := download.NewService(runner, logger.Named("service"))

	lister := platform.NewPlaylistLister()
	prober := probe.NewProber(cfg.YTDLPPath,
		probe.WithCookiesFile(cfg.CookiesFile),
		probe.WithTimeout(cfg.ProbeTimeout),
		probe.WithLogger(logger.Named("probe")),
		probe.WithPlaylistLister(lister, platform.IsPlaylistURL),
	)
	thumbnails := platform.NewThumbnailFetcher(nil, download.DefaultUserAgent)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp, ui.Deps{
		Downloads:  downloadSvc,
		Prober:     prober,
		Store:      store,
		Thumbnails: thumbnails,
		Logger:     logger.Named("ui"),
	})

	myWindow.ShowAndRun()

	// The UI loop is gone; detach it and kill a still running yt-dlp
	downloadSvc.SetUpdateCallback(nil)
	downloadSvc.SetLineCallback(nil)
	if task, ok := downloadSvc.ActiveTask(); ok {
		if err := downloadSvc.StopTask(task.ID); err != nil {
			logger.Warn("failed to stop task on exit", zap.String("task_id", task.ID), zap.Error(err))
		}
	}
	downloadSvc.Wait()
}
