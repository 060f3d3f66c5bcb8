package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"playlist page", "https://www.youtube.com/playlist?list=PL123", "PL123"},
		{"watch with list", "https://www.youtube.com/watch?v=abc&list=PL456&index=2", "PL456"},
		{"single video", "https://www.youtube.com/watch?v=abc", ""},
		{"empty list", "https://www.youtube.com/watch?v=abc&list=", ""},
		{"garbage", "://bad", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPlaylistID(tt.url))
			assert.Equal(t, tt.expected != "", IsPlaylistURL(tt.url))
		})
	}
}

func TestPlaylistLister_ListPlaylist(t *testing.T) {
	lister := NewPlaylistLister()
	var gotID string
	lister.SetItemsFunc(func(ctx context.Context, playlistID string) ([]string, error) {
		gotID = playlistID
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return []string{"a1", "", "b2"}, nil
	})

	col, err := lister.ListPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	require.NoError(t, err)

	assert.Equal(t, "PL1", gotID)
	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=a1",
		"https://www.youtube.com/watch?v=b2",
	}, col.Entries)
}

func TestPlaylistLister_Errors(t *testing.T) {
	lister := NewPlaylistLister()
	lister.SetTimeout(time.Second)
	lister.SetItemsFunc(func(context.Context, string) ([]string, error) {
		return nil, errors.New("boom")
	})

	_, err := lister.ListPlaylist(context.Background(), "https://www.youtube.com/watch?v=abc")
	assert.ErrorIs(t, err, ErrNotPlaylist)

	_, err = lister.ListPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PL1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
