package platform

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"time"

	_ "golang.org/x/image/webp" // register WebP decoder, used by most YouTube thumbnails
)

// Thumbnail limits
const (
	DefaultThumbnailTimeout = 15 * time.Second
	MaxThumbnailBytes       = 10 * 1024 * 1024
)

// Thumbnail is a fetched and decoded preview image
type Thumbnail struct {
	Image  image.Image
	Format string // decoder name, e.g. "jpeg" or "webp"
	Data   []byte
}

// ThumbnailFetcher downloads thumbnails over HTTP
type ThumbnailFetcher struct {
	client    *http.Client
	userAgent string
}

// NewThumbnailFetcher creates a fetcher sending the given User-Agent
func NewThumbnailFetcher(client *http.Client, userAgent string) *ThumbnailFetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultThumbnailTimeout}
	}
	return &ThumbnailFetcher{client: client, userAgent: userAgent}
}

// Fetch downloads and decodes the image at url. Any non-200 status is an error.
func (f *ThumbnailFetcher) Fetch(ctx context.Context, url string) (*Thumbnail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch thumbnail: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxThumbnailBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}

	return &Thumbnail{Image: img, Format: format, Data: data}, nil
}
