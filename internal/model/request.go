package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MediaKind selects between a video download and audio-only extraction
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
)

// Output naming used inside a destination directory
const (
	TitleOutputTemplate = "%(title)s.%(ext)s"
	VideoExtension      = ".mp4"
	AudioExtension      = ".mp3"
)

// Extension returns the container extension produced for the kind
func (k MediaKind) Extension() string {
	if k == MediaKindAudio {
		return AudioExtension
	}
	return VideoExtension
}

// Valid reports whether k is a known media kind
func (k MediaKind) Valid() bool {
	return k == MediaKindVideo || k == MediaKindAudio
}

// Accepts 90, 1:30, 01:02:03 and fractional seconds such as 12.5
var trimTimestampPattern = regexp.MustCompile(`^\d+(:\d{1,2}){0,2}(\.\d+)?$`)

// DownloadRequest describes one download; it is consumed by a single run.
// Exactly one of File or Directory is set: File is an explicit output path,
// Directory receives a per-title file.
type DownloadRequest struct {
	SourceURL      string    `json:"source_url"`
	File           string    `json:"file,omitempty"`
	Directory      string    `json:"directory,omitempty"`
	Kind           MediaKind `json:"kind"`
	FormatSelector string    `json:"format_selector,omitempty"` // empty means the tool's default "best"
	TrimStart      string    `json:"trim_start,omitempty"`
	TrimEnd        string    `json:"trim_end,omitempty"`
}

// OutputPath returns the value passed to the downloader's -o flag
func (r DownloadRequest) OutputPath() string {
	if r.File != "" {
		return r.File
	}
	return filepath.Join(r.Directory, TitleOutputTemplate)
}

// HasTrim reports whether either trim bound is set
func (r DownloadRequest) HasTrim() bool {
	return r.TrimStart != "" || r.TrimEnd != ""
}

// Validate checks the request before it is handed to the runner
func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.SourceURL) == "" {
		return errors.New("source URL is required")
	}
	if r.File == "" && r.Directory == "" {
		return errors.New("destination file or directory is required")
	}
	if r.File != "" && r.Directory != "" {
		return errors.New("only one of destination file and directory may be set")
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("unknown media kind %q", r.Kind)
	}
	for _, ts := range []string{r.TrimStart, r.TrimEnd} {
		if ts != "" && !trimTimestampPattern.MatchString(ts) {
			return fmt.Errorf("invalid trim timestamp %q", ts)
		}
	}
	return nil
}
