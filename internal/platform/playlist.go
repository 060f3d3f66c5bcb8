package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-grabber/internal/model"
)

// Timeout constants
const (
	DefaultListTimeout = 60 * time.Second
)

// URL parameters and templates
const (
	PlaylistParam           = "list"
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// ErrNotPlaylist is returned for URLs without a playlist id
var ErrNotPlaylist = errors.New("not a playlist URL")

// PlaylistItemsFunc fetches the video ids of a playlist
type PlaylistItemsFunc func(ctx context.Context, playlistID string) ([]string, error)

// PlaylistLister lists playlist entries through the native ytdlp client,
// without spawning the yt-dlp binary
type PlaylistLister struct {
	timeout time.Duration
	items   PlaylistItemsFunc
}

// NewPlaylistLister creates a lister backed by github.com/ytget/ytdlp/v2
func NewPlaylistLister() *PlaylistLister {
	return &PlaylistLister{
		timeout: DefaultListTimeout,
		items:   fetchPlaylistItems,
	}
}

// SetTimeout sets the timeout for listing operations
func (p *PlaylistLister) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// SetItemsFunc replaces the playlist backend
func (p *PlaylistLister) SetItemsFunc(fn PlaylistItemsFunc) {
	p.items = fn
}

// ListPlaylist returns the entries of the playlist referenced by rawURL as
// watch URLs, in playlist order
func (p *PlaylistLister) ListPlaylist(ctx context.Context, rawURL string) (*model.Collection, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaylist, rawURL)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ids, err := p.items(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		entries = append(entries, fmt.Sprintf(YouTubeVideoURLTemplate, id))
	}
	return &model.Collection{Entries: entries}, nil
}

// IsPlaylistURL reports whether the URL carries a playlist id
func IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// ExtractPlaylistID returns the value of the list= query parameter
func ExtractPlaylistID(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return u.Query().Get(PlaylistParam)
}

func fetchPlaylistItems(ctx context.Context, playlistID string) ([]string, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.VideoID)
	}
	return ids, nil
}
