// Command yt-grabber probes and downloads videos from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/logging"
	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/probe"
)

// options are the parsed command line flags
type options struct {
	URL           string
	Audio         bool
	FormatID      string
	Quality       string
	Out           string
	Start         string
	End           string
	ProbeOnly     bool
	SetDefaultDir string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("yt-grabber", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.URL, "url", "", "video or playlist URL")
	fs.BoolVar(&opts.Audio, "audio", false, "extract audio as mp3 instead of downloading video")
	fs.StringVar(&opts.FormatID, "format", "", "format id of a single video (see -probe)")
	fs.StringVar(&opts.Quality, "quality", "", "quality tier: Best, 1080p, 720p, 480p or 360p")
	fs.StringVar(&opts.Out, "out", "", "output directory (default: configured default directory)")
	fs.StringVar(&opts.Start, "start", "", "trim start timestamp, e.g. 00:30")
	fs.StringVar(&opts.End, "end", "", "trim end timestamp, e.g. 01:45")
	fs.BoolVar(&opts.ProbeOnly, "probe", false, "print media information and exit")
	fs.StringVar(&opts.SetDefaultDir, "set-default-dir", "", "persist the default download directory")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: yt-grabber -url <url> [-audio] [-format ID | -quality TIER] [-out DIR] [-start TS] [-end TS] [-probe]")
		fmt.Fprintln(stderr, "       yt-grabber -set-default-dir <dir>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.URL = strings.TrimSpace(opts.URL)
	if opts.URL == "" && opts.SetDefaultDir == "" {
		fs.Usage()
		return opts, errors.New("-url is required")
	}
	return opts, nil
}

func (o options) kind() model.MediaKind {
	if o.Audio {
		return model.MediaKindAudio
	}
	return model.MediaKindVideo
}

// buildRequests turns a probe result into runner requests. Collections are
// downloaded as a batch into dir; single items go to a title-named file.
func buildRequests(opts options, result *model.ProbeResult, dir string) ([]model.DownloadRequest, bool, error) {
	kind := opts.kind()

	if result.IsCollection() {
		if result.Collection.Len() == 0 {
			return nil, true, errors.New("playlist has no entries")
		}
		reqs := download.BatchRequests(result.Collection.Entries, dir, kind, opts.Quality)
		for i := range reqs {
			reqs[i].TrimStart = opts.Start
			reqs[i].TrimEnd = opts.End
		}
		return reqs, true, nil
	}

	item := result.Item
	if item == nil {
		return nil, false, errors.New("nothing to download")
	}

	req := model.DownloadRequest{
		SourceURL: item.WebpageURL,
		File:      platform.SanitizedOutputFile(dir, item.Title, kind),
		Kind:      kind,
		TrimStart: opts.Start,
		TrimEnd:   opts.End,
	}
	if kind == model.MediaKindVideo {
		switch {
		case opts.FormatID != "":
			if _, ok := item.FindFormat(opts.FormatID); !ok {
				return nil, false, fmt.Errorf("format %q is not offered for this video", opts.FormatID)
			}
			req.FormatSelector = opts.FormatID
		case opts.Quality != "":
			req.FormatSelector = download.FormatForQuality(opts.Quality)
		}
	}
	return []model.DownloadRequest{req}, false, req.Validate()
}

func printProbe(w io.Writer, result *model.ProbeResult) {
	if result.IsCollection() {
		fmt.Fprintf(w, "Playlist with %d entries\n", result.Collection.Len())
		for i, entry := range result.Collection.Entries {
			fmt.Fprintf(w, "  %3d. %s\n", i+1, entry)
		}
		return
	}

	item := result.Item
	fmt.Fprintf(w, "Title:    %s\n", item.Title)
	fmt.Fprintf(w, "URL:      %s\n", item.WebpageURL)
	fmt.Fprintf(w, "Duration: %s\n", item.DisplayDuration())
	if item.ThumbnailURL != "" {
		fmt.Fprintf(w, "Thumb:    %s\n", item.ThumbnailURL)
	}
	fmt.Fprintln(w, "Formats:")
	for _, f := range item.Formats {
		fmt.Fprintf(w, "  %s\n", f.Label())
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}
	logger, err := logging.New(cfg.LogLevel, logging.FormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	store := config.NewFileStore(cfg.SettingsPath)
	if opts.SetDefaultDir != "" {
		if err := config.SetDefaultDirectory(store, opts.SetDefaultDir); err != nil {
			logger.Error("failed to save default directory", zap.Error(err))
			return 1
		}
		fmt.Printf("Default download directory set to %s\n", opts.SetDefaultDir)
		if opts.URL == "" {
			return 0
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prober := probe.NewProber(cfg.YTDLPPath,
		probe.WithCookiesFile(cfg.CookiesFile),
		probe.WithTimeout(cfg.ProbeTimeout),
		probe.WithLogger(logger.Named("probe")),
		probe.WithPlaylistLister(platform.NewPlaylistLister(), platform.IsPlaylistURL),
	)
	result, err := prober.Probe(ctx, opts.URL)
	if err != nil {
		logger.Error("probe failed", zap.String("url", opts.URL), zap.Error(err))
		return 1
	}
	printProbe(os.Stdout, result)
	if opts.ProbeOnly {
		return 0
	}

	dir := opts.Out
	if dir == "" {
		if dir, err = config.ResolveDownloadDirectory(store); err != nil {
			logger.Error("failed to resolve download directory", zap.Error(err))
			return 1
		}
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		logger.Error("failed to create download directory", zap.String("dir", dir), zap.Error(err))
		return 1
	}

	reqs, batch, err := buildRequests(opts, result, dir)
	if err != nil {
		logger.Error("invalid download", zap.Error(err))
		return 1
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription(string(opts.kind())),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
	hooks := download.Hooks{
		Progress: func(p int) { _ = bar.Set(p) },
		Line: func(line string) {
			logger.Debug("yt-dlp", zap.String("line", line))
		},
	}

	runner := download.NewRunner(cfg.YTDLPPath, logger.Named("runner"))
	var outcome model.Outcome
	if batch {
		outcome = runner.RunBatch(ctx, reqs, hooks)
	} else {
		outcome = runner.Run(ctx, reqs[0], hooks)
	}
	_ = bar.Finish()

	fmt.Println(outcome.Summary())
	if err := download.OutcomeError(outcome); err != nil {
		return 1
	}
	if !batch && outcome.Kind == model.OutcomeSuccess {
		fmt.Printf("Saved to %s\n", reqs[0].File)
	}
	return 0
}
