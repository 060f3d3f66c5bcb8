package download

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-grabber/internal/model"
)

func TestBuildArgs(t *testing.T) {
	ua := UserAgentHeader()

	tests := []struct {
		name     string
		req      model.DownloadRequest
		expected []string
	}{
		{
			name: "video with explicit format to file",
			req: model.DownloadRequest{
				SourceURL:      "https://www.youtube.com/watch?v=abc",
				File:           "/out/My Video.mp4",
				Kind:           model.MediaKindVideo,
				FormatSelector: "137",
			},
			expected: []string{
				"--add-header", ua,
				"-f", "137",
				"--recode-video", "mp4",
				"-o", "/out/My Video.mp4",
				"https://www.youtube.com/watch?v=abc",
			},
		},
		{
			name: "video without format leaves best to the tool",
			req: model.DownloadRequest{
				SourceURL: "https://www.youtube.com/watch?v=abc",
				File:      "/out/v.mp4",
				Kind:      model.MediaKindVideo,
			},
			expected: []string{
				"--add-header", ua,
				"--recode-video", "mp4",
				"-o", "/out/v.mp4",
				"https://www.youtube.com/watch?v=abc",
			},
		},
		{
			name: "audio into directory",
			req: model.DownloadRequest{
				SourceURL: "https://www.youtube.com/watch?v=abc",
				Directory: "/music",
				Kind:      model.MediaKindAudio,
			},
			expected: []string{
				"--add-header", ua,
				"-x", "--audio-format", "mp3",
				"-o", filepath.Join("/music", "%(title)s.%(ext)s"),
				"https://www.youtube.com/watch?v=abc",
			},
		},
		{
			name: "trim with both bounds",
			req: model.DownloadRequest{
				SourceURL: "u",
				File:      "/out/v.mp4",
				Kind:      model.MediaKindVideo,
				TrimStart: "00:00:10",
				TrimEnd:   "00:01:00",
			},
			expected: []string{
				"--add-header", ua,
				"--recode-video", "mp4",
				"--postprocessor-args", "ffmpeg:-ss 00:00:10 -to 00:01:00",
				"-o", "/out/v.mp4",
				"u",
			},
		},
		{
			name: "trim end only",
			req: model.DownloadRequest{
				SourceURL: "u",
				File:      "/out/a.mp3",
				Kind:      model.MediaKindAudio,
				TrimEnd:   "90",
			},
			expected: []string{
				"--add-header", ua,
				"-x", "--audio-format", "mp3",
				"--postprocessor-args", "ffmpeg:-to 90",
				"-o", "/out/a.mp3",
				"u",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildArgs(tt.req))
		})
	}
}

func TestBuildArgs_AudioNeverSelectsVideoFormat(t *testing.T) {
	for _, selector := range []string{"", "137", FormatForQuality(Quality720p)} {
		req := model.DownloadRequest{
			SourceURL:      "https://www.youtube.com/watch?v=abc",
			Directory:      "/music",
			Kind:           model.MediaKindAudio,
			FormatSelector: selector,
		}
		args := BuildArgs(req)
		assert.NotContains(t, args, FlagFormat, "selector %q", selector)
		assert.NotContains(t, args, FlagRecodeVideo, "selector %q", selector)
	}
}

func TestFormatForQuality(t *testing.T) {
	tests := map[string]string{
		"Best":  "best",
		"1080p": "bestvideo[height<=1080]+bestaudio/best",
		"720p":  "bestvideo[height<=720]+bestaudio/best",
		"480p":  "bestvideo[height<=480]+bestaudio/best",
		"360p":  "bestvideo[height<=360]+bestaudio/best",
	}
	for tier, expected := range tests {
		assert.Equal(t, expected, FormatForQuality(tier), "tier %s", tier)
	}
}

func TestFormatForQuality_UnknownFallsBackToBest(t *testing.T) {
	best := FormatForQuality(QualityBest)
	for _, tier := range []string{"", "-- None --", "4k", "720", "best", "1080P", "137p (mp4) [ID: 137]"} {
		assert.Equal(t, best, FormatForQuality(tier), "tier %q", tier)
	}
}

func TestQualityTiers(t *testing.T) {
	tiers := QualityTiers()
	assert.Equal(t, []string{"Best", "1080p", "720p", "480p", "360p"}, tiers)
	for _, tier := range tiers {
		assert.Contains(t, qualityFormatMap, tier)
	}
}

func TestBatchRequests(t *testing.T) {
	urls := []string{"u1", "u2"}

	video := BatchRequests(urls, "/dl", model.MediaKindVideo, "480p")
	assert.Len(t, video, 2)
	for i, req := range video {
		assert.Equal(t, urls[i], req.SourceURL)
		assert.Equal(t, "/dl", req.Directory)
		assert.Equal(t, "bestvideo[height<=480]+bestaudio/best", req.FormatSelector)
		assert.NoError(t, req.Validate())
	}

	audio := BatchRequests(urls, "/dl", model.MediaKindAudio, "480p")
	for _, req := range audio {
		assert.Empty(t, req.FormatSelector)
	}
}
