package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     DownloadRequest
		wantErr string
	}{
		{
			name: "video to file",
			req:  DownloadRequest{SourceURL: "https://youtu.be/x", File: "/tmp/x.mp4", Kind: MediaKindVideo},
		},
		{
			name: "audio to directory with trim",
			req:  DownloadRequest{SourceURL: "https://youtu.be/x", Directory: "/tmp", Kind: MediaKindAudio, TrimStart: "1:30", TrimEnd: "00:02:10.5"},
		},
		{
			name:    "missing url",
			req:     DownloadRequest{File: "/tmp/x.mp4", Kind: MediaKindVideo},
			wantErr: "source URL is required",
		},
		{
			name:    "missing destination",
			req:     DownloadRequest{SourceURL: "https://youtu.be/x", Kind: MediaKindVideo},
			wantErr: "destination file or directory is required",
		},
		{
			name:    "both destinations",
			req:     DownloadRequest{SourceURL: "https://youtu.be/x", File: "/tmp/x.mp4", Directory: "/tmp", Kind: MediaKindVideo},
			wantErr: "only one of destination",
		},
		{
			name:    "unknown kind",
			req:     DownloadRequest{SourceURL: "https://youtu.be/x", File: "/tmp/x", Kind: "gif"},
			wantErr: "unknown media kind",
		},
		{
			name:    "bad trim",
			req:     DownloadRequest{SourceURL: "https://youtu.be/x", File: "/tmp/x", Kind: MediaKindVideo, TrimEnd: "soon"},
			wantErr: "invalid trim timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDownloadRequest_OutputPath(t *testing.T) {
	file := DownloadRequest{File: "/videos/clip.mp4"}
	assert.Equal(t, "/videos/clip.mp4", file.OutputPath())

	dir := DownloadRequest{Directory: "/videos"}
	assert.Equal(t, filepath.Join("/videos", "%(title)s.%(ext)s"), dir.OutputPath())
}

func TestDownloadRequest_HasTrim(t *testing.T) {
	assert.False(t, DownloadRequest{}.HasTrim())
	assert.True(t, DownloadRequest{TrimStart: "00:10"}.HasTrim())
	assert.True(t, DownloadRequest{TrimEnd: "90"}.HasTrim())
}

func TestMediaKind_Extension(t *testing.T) {
	assert.Equal(t, ".mp4", MediaKindVideo.Extension())
	assert.Equal(t, ".mp3", MediaKindAudio.Extension())
}
