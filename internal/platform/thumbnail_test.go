package platform

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnailFetcher_Fetch(t *testing.T) {
	body := pngBytes(t)
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	fetcher := NewThumbnailFetcher(srv.Client(), "test-agent/1.0")
	thumb, err := fetcher.Fetch(context.Background(), srv.URL+"/hq.png")
	require.NoError(t, err)

	assert.Equal(t, "test-agent/1.0", gotUA)
	assert.Equal(t, "png", thumb.Format)
	assert.Equal(t, 4, thumb.Image.Bounds().Dx())
	assert.Equal(t, body, thumb.Data)
}

func TestThumbnailFetcher_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("definitely not an image"))
	}))
	defer srv.Close()

	fetcher := NewThumbnailFetcher(nil, "")

	_, err := fetcher.Fetch(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")

	_, err = fetcher.Fetch(context.Background(), srv.URL+"/garbage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode thumbnail")

	_, err = fetcher.Fetch(context.Background(), "http://\x7f")
	assert.Error(t, err)
}
