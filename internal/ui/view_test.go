package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-grabber/internal/model"
)

func sampleItem() *model.MediaItem {
	return &model.MediaItem{
		ID:              "abc123",
		Title:           "Sample: clip?",
		WebpageURL:      "https://www.youtube.com/watch?v=abc123",
		DurationSeconds: 125,
		Formats: []model.FormatOption{
			{FormatID: "137", Extension: "mp4", Height: 1080},
			{FormatID: "22", Extension: "mp4", Height: 720},
			{FormatID: "sb0", Extension: "mhtml"},
		},
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"   ", false},
		{"https://www.youtube.com/watch?v=abc", false},
		{"http://youtu.be/abc", false},
		{"ftp://example.com/file", true},
		{"youtube.com/watch?v=abc", true},
		{"https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatChoices(t *testing.T) {
	assert.Equal(t, []string{NoFormatOption}, formatChoices(nil))

	choices := formatChoices(sampleItem())
	assert.Equal(t, []string{
		NoFormatOption,
		"1080p (mp4) [ID: 137]",
		"720p (mp4) [ID: 22]",
		"Unknownp (mhtml) [ID: sb0]",
	}, choices)
}

func TestFormatIDForChoice(t *testing.T) {
	item := sampleItem()

	id, ok := formatIDForChoice(item, "720p (mp4) [ID: 22]")
	assert.True(t, ok)
	assert.Equal(t, "22", id)

	_, ok = formatIDForChoice(item, NoFormatOption)
	assert.False(t, ok)
	_, ok = formatIDForChoice(item, "")
	assert.False(t, ok)
	_, ok = formatIDForChoice(item, "4320p (mp4) [ID: 999]")
	assert.False(t, ok)
	_, ok = formatIDForChoice(nil, "720p (mp4) [ID: 22]")
	assert.False(t, ok)
}

func TestSingleDestination(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "Sample_ clip_.mp4"), singleDestination(dir, "Sample: clip?", model.MediaKindVideo))
	assert.Equal(t, filepath.Join(dir, "Sample_ clip_.mp3"), singleDestination(dir, "Sample: clip?", model.MediaKindAudio))
	assert.Equal(t, filepath.Join(dir, "download.mp4"), singleDestination(dir, "", model.MediaKindVideo))
}

func TestDescribeProbe(t *testing.T) {
	loc := NewLocalization()

	assert.Empty(t, describeProbe(nil, loc))
	assert.Equal(t, "Playlist: 3 videos",
		describeProbe(&model.ProbeResult{Collection: &model.Collection{Entries: []string{"a", "b", "c"}}}, loc))

	got := describeProbe(&model.ProbeResult{Item: sampleItem()}, loc)
	assert.True(t, strings.HasPrefix(got, "Sample: clip?"+MiddleDotSeparator))
	assert.Contains(t, got, "02:05")
}

func TestOutcomeMessage(t *testing.T) {
	loc := NewLocalization()

	tests := []struct {
		name       string
		outcome    model.Outcome
		want       string
		wantFailed bool
	}{
		{"success", model.SuccessOutcome(1, 1), "Download completed successfully", false},
		{"single skip", model.SkipOutcome(model.SkippedUnavailableMessage, 1, 0, 1), "Skipped private/unavailable video.", false},
		{"batch skip", model.SkipOutcome("", 4, 3, 1), "Download completed, 1 of 4 skipped", false},
		{"cancelled", model.CancelledOutcome(2, 1, 0), "Download cancelled", false},
		{"failure", model.FailureOutcome("ERROR: quota exceeded\n", 1, 1, 0, 0), "Download failed: ERROR: quota exceeded", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, failed := outcomeMessage(tt.outcome, loc)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestProgressValue(t *testing.T) {
	assert.Equal(t, 0.0, progressValue(-5))
	assert.Equal(t, 0.0, progressValue(0))
	assert.Equal(t, 0.45, progressValue(45))
	assert.Equal(t, 1.0, progressValue(100))
	assert.Equal(t, 1.0, progressValue(250))
}

func TestConsoleBuffer(t *testing.T) {
	c := newConsoleBuffer(3)

	c.Append("")
	c.Append("   ")
	assert.Zero(t, c.Len())

	for i := 1; i <= 5; i++ {
		c.Append(fmt.Sprintf("line %d\r\n", i))
	}
	require.Equal(t, 3, c.Len())
	assert.Equal(t, "line 3\nline 4\nline 5", c.String())

	c.Reset()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.String())
}

func TestDisplayPercent(t *testing.T) {
	assert.Equal(t, 100, displayPercent(&model.DownloadTask{Status: model.TaskStatusCompleted, Percent: 40}))
	assert.Equal(t, 40, displayPercent(&model.DownloadTask{Status: model.TaskStatusDownloading, Percent: 40}))
	assert.Equal(t, 0, displayPercent(&model.DownloadTask{Status: model.TaskStatusError, Percent: -1}))
	assert.Equal(t, 100, displayPercent(&model.DownloadTask{Status: model.TaskStatusStopped, Percent: 130}))
}

func TestPreviewURL(t *testing.T) {
	u, ok := previewURL(&model.ProbeResult{Item: sampleItem()})
	require.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", u.String())

	tests := []struct {
		name   string
		result *model.ProbeResult
	}{
		{"nothing probed", nil},
		{"collection", &model.ProbeResult{Collection: &model.Collection{Entries: []string{"a"}}}},
		{"no webpage", &model.ProbeResult{Item: &model.MediaItem{Title: "x"}}},
		{"not http", &model.ProbeResult{Item: &model.MediaItem{WebpageURL: "file:///etc/passwd"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := previewURL(tt.result)
			assert.False(t, ok)
		})
	}
}

func TestRevealActions(t *testing.T) {
	tests := []struct {
		name           string
		outcome        model.Outcome
		batch          bool
		wantOpenFile   bool
		wantOpenFolder bool
	}{
		{"single success", model.SuccessOutcome(1, 1), false, true, true},
		{"single skip", model.SkipOutcome(model.SkippedUnavailableMessage, 1, 0, 1), false, false, true},
		{"batch success", model.SuccessOutcome(3, 3), true, false, true},
		{"failure", model.FailureOutcome("ERROR", 1, 1, 0, 0), false, false, false},
		{"cancelled", model.CancelledOutcome(1, 0, 0), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			openFile, openFolder := revealActions(tt.outcome, tt.batch)
			assert.Equal(t, tt.wantOpenFile, openFile)
			assert.Equal(t, tt.wantOpenFolder, openFolder)
		})
	}
}
