package model

import (
	"fmt"
	"sort"
	"strconv"
)

// Placeholders used when the extractor omits a field
const (
	DefaultTitle        = "untitled"
	UnknownPlaceholder  = "Unknown"
	FormatLabelTemplate = "%sp (%s) [ID: %s]"
)

// FormatOption is one video-capable stream reported for a media item
type FormatOption struct {
	FormatID  string `json:"format_id"`
	Extension string `json:"ext"`
	Height    int    `json:"height,omitempty"` // 0 when unknown
}

// Label renders the option the way it is shown in quality pickers,
// e.g. "1080p (mp4) [ID: 137]".
func (f FormatOption) Label() string {
	height := UnknownPlaceholder
	if f.Height > 0 {
		height = strconv.Itoa(f.Height)
	}
	return fmt.Sprintf(FormatLabelTemplate, height, orUnknown(f.Extension), orUnknown(f.FormatID))
}

// SortFormats orders options by height, tallest first. Unknown heights sort
// as 0 and the sort is stable, so equal heights keep extractor order.
func SortFormats(formats []FormatOption) {
	sort.SliceStable(formats, func(i, j int) bool {
		return formats[i].Height > formats[j].Height
	})
}

// MediaItem describes a single probed video
type MediaItem struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	WebpageURL      string         `json:"webpage_url"`
	ThumbnailURL    string         `json:"thumbnail_url,omitempty"`
	DurationSeconds float64        `json:"duration_seconds"`
	Formats         []FormatOption `json:"formats"`
}

// DisplayDuration returns the duration formatted as MM:SS or HH:MM:SS
func (m *MediaItem) DisplayDuration() string {
	return FormatDuration(int(m.DurationSeconds))
}

// FindFormat returns the option with the given format id
func (m *MediaItem) FindFormat(formatID string) (FormatOption, bool) {
	for _, f := range m.Formats {
		if f.FormatID == formatID {
			return f, true
		}
	}
	return FormatOption{}, false
}

// Collection is the flat result of probing a playlist-like URL
type Collection struct {
	Entries []string `json:"entries"`
}

// Len returns the number of entries
func (c *Collection) Len() int {
	return len(c.Entries)
}

// ProbeResult holds exactly one of Item or Collection
type ProbeResult struct {
	Item       *MediaItem  `json:"item,omitempty"`
	Collection *Collection `json:"collection,omitempty"`
}

// IsCollection reports whether the probe found a playlist
func (r *ProbeResult) IsCollection() bool {
	return r != nil && r.Collection != nil
}

// URLs returns the URLs a download of this result would fetch, in order
func (r *ProbeResult) URLs() []string {
	switch {
	case r == nil:
		return nil
	case r.Collection != nil:
		return append([]string(nil), r.Collection.Entries...)
	case r.Item != nil:
		return []string{r.Item.WebpageURL}
	default:
		return nil
	}
}

// FormatDuration formats seconds into MM:SS or HH:MM:SS
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownPlaceholder
	}
	return s
}
