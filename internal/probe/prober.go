package probe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/model"
)

// DefaultTimeout bounds one probe including fallbacks
const DefaultTimeout = 60 * time.Second

// yt-dlp flags used for metadata extraction
const (
	FlagQuiet       = "--quiet"
	FlagNoWarnings  = "--no-warnings"
	FlagDumpJSON    = "--dump-single-json"
	FlagFlatList    = "--flat-playlist"
	FlagCookiesFile = "--cookies"
)

// PlaylistLister lists playlist entries without the yt-dlp binary.
// *platform.PlaylistLister is the production implementation.
type PlaylistLister interface {
	ListPlaylist(ctx context.Context, url string) (*model.Collection, error)
}

// Prober resolves URLs to media items or collections
type Prober struct {
	binary      string
	cookiesFile string
	timeout     time.Duration
	logger      *zap.Logger
	command     download.CommandFunc
	lister      PlaylistLister
	isPlaylist  func(url string) bool
}

// Option configures a Prober
type Option func(*Prober)

// WithCookiesFile enables the cookie retry with the given Netscape cookie file
func WithCookiesFile(path string) Option {
	return func(p *Prober) { p.cookiesFile = path }
}

// WithTimeout sets the per-probe timeout
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) { p.timeout = d }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Prober) { p.logger = l }
}

// WithCommandFunc replaces the process factory
func WithCommandFunc(fn download.CommandFunc) Option {
	return func(p *Prober) { p.command = fn }
}

// WithPlaylistLister enables the native playlist fallback for URLs that
// isPlaylist accepts
func WithPlaylistLister(l PlaylistLister, isPlaylist func(url string) bool) Option {
	return func(p *Prober) {
		p.lister = l
		p.isPlaylist = isPlaylist
	}
}

// NewProber creates a prober invoking the given yt-dlp binary
func NewProber(binary string, opts ...Option) *Prober {
	if binary == "" {
		binary = download.DefaultBinary
	}
	p := &Prober{
		binary:  binary,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
		command: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe extracts metadata for url. Every failure is an *ExtractionError;
// when all fallbacks fail the first extraction error is returned.
func (p *Prober) Probe(ctx context.Context, url string) (*model.ProbeResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &ExtractionError{URL: url, Message: "URL is empty"}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result, firstErr := p.extract(ctx, url, "")
	if firstErr == nil {
		return result, nil
	}
	p.logger.Info("metadata extraction failed", zap.String("url", url), zap.Error(firstErr))

	if p.cookiesUsable() && ctx.Err() == nil {
		result, err := p.extract(ctx, url, p.cookiesFile)
		if err == nil {
			p.logger.Info("metadata extracted with cookies", zap.String("url", url))
			return result, nil
		}
		p.logger.Info("cookie retry failed", zap.String("url", url), zap.Error(err))
	}

	if p.lister != nil && p.isPlaylist != nil && p.isPlaylist(url) && ctx.Err() == nil {
		col, err := p.lister.ListPlaylist(ctx, url)
		if err == nil {
			p.logger.Info("playlist listed natively", zap.String("url", url), zap.Int("entries", col.Len()))
			return &model.ProbeResult{Collection: col}, nil
		}
		p.logger.Info("native playlist listing failed", zap.String("url", url), zap.Error(err))
	}

	return nil, firstErr
}

func (p *Prober) cookiesUsable() bool {
	if p.cookiesFile == "" {
		return false
	}
	info, err := os.Stat(p.cookiesFile)
	return err == nil && !info.IsDir()
}

// Args returns the yt-dlp arguments for probing url
func Args(url, cookiesFile string) []string {
	args := []string{
		FlagQuiet,
		FlagNoWarnings,
		FlagDumpJSON,
		FlagFlatList,
		download.FlagAddHeader, download.UserAgentHeader(),
	}
	if cookiesFile != "" {
		args = append(args, FlagCookiesFile, cookiesFile)
	}
	return append(args, url)
}

func (p *Prober) extract(ctx context.Context, url, cookiesFile string) (*model.ProbeResult, error) {
	cmd := p.command(ctx, p.binary, Args(url, cookiesFile)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &ExtractionError{URL: url, Message: "metadata extraction interrupted", Err: ctxErr}
		}
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if msg == "" && !errors.As(err, &exitErr) {
			msg = err.Error()
		}
		return nil, &ExtractionError{URL: url, Message: msg, Err: err}
	}

	result, err := ParseInfo(stdout.Bytes(), url)
	if err != nil {
		return nil, &ExtractionError{URL: url, Message: err.Error(), Err: err}
	}
	return result, nil
}
