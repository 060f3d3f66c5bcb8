package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
)

// WatchURLPrefix turns a bare video id into a watch URL
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// vcodecNone marks audio-only formats
const vcodecNone = "none"

type rawInfo struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	WebpageURL string      `json:"webpage_url"`
	Thumbnail  string      `json:"thumbnail"`
	Duration   *float64    `json:"duration"`
	Formats    []rawFormat `json:"formats"`
	Entries    []rawEntry  `json:"entries"`
}

type rawFormat struct {
	FormatID string   `json:"format_id"`
	Ext      string   `json:"ext"`
	Height   *float64 `json:"height"`
	VCodec   *string  `json:"vcodec"`
}

type rawEntry struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// ParseInfo converts a yt-dlp --dump-single-json document into a probe
// result. sourceURL is used when the document carries no webpage_url.
func ParseInfo(data []byte, sourceURL string) (*model.ProbeResult, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	if keys == nil {
		return nil, errors.New("failed to parse metadata: document is not a JSON object")
	}

	var info rawInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if _, ok := keys["entries"]; ok {
		return &model.ProbeResult{Collection: parseCollection(info.Entries)}, nil
	}
	return &model.ProbeResult{Item: parseItem(info, sourceURL)}, nil
}

func parseCollection(entries []rawEntry) *model.Collection {
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		ref := e.URL
		if ref == "" {
			ref = e.ID
		}
		if ref == "" {
			continue
		}
		urls = append(urls, EntryURL(ref))
	}
	return &model.Collection{Entries: urls}
}

// EntryURL expands a flat playlist entry into a URL a downloader accepts
func EntryURL(ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return WatchURLPrefix + ref
}

func parseItem(info rawInfo, sourceURL string) *model.MediaItem {
	item := &model.MediaItem{
		ID:           info.ID,
		Title:        info.Title,
		WebpageURL:   info.WebpageURL,
		ThumbnailURL: info.Thumbnail,
		Formats:      parseFormats(info.Formats),
	}
	if item.Title == "" {
		item.Title = model.DefaultTitle
	}
	if item.WebpageURL == "" {
		item.WebpageURL = sourceURL
	}
	if info.Duration != nil && *info.Duration > 0 {
		item.DurationSeconds = *info.Duration
	}
	return item
}

// parseFormats keeps video-capable formats, tallest first
func parseFormats(raw []rawFormat) []model.FormatOption {
	formats := make([]model.FormatOption, 0, len(raw))
	for _, f := range raw {
		if f.VCodec != nil && *f.VCodec == vcodecNone {
			continue
		}
		opt := model.FormatOption{
			FormatID:  f.FormatID,
			Extension: f.Ext,
		}
		if opt.FormatID == "" {
			opt.FormatID = model.UnknownPlaceholder
		}
		if opt.Extension == "" {
			opt.Extension = model.UnknownPlaceholder
		}
		if f.Height != nil && *f.Height > 0 {
			opt.Height = int(*f.Height)
		}
		formats = append(formats, opt)
	}
	model.SortFormats(formats)
	return formats
}
