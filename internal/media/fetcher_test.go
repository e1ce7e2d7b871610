package media_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 7 {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetcher_Fetch(t *testing.T) {
	small := pngBytes(t, 40, 20)
	large := pngBytes(t, 3840, 100)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, domain.DEFAULT_USER_AGENT, r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/small.png":
			_, _ = w.Write(small)
		case "/large.png":
			_, _ = w.Write(large)
		case "/page.html":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("<html><body>not an image</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := media.NewFetcher(adapter.NewHTTPClient(5*time.Second), 5*time.Second)
	ctx := context.Background()

	t.Run("small image is kept as is", func(t *testing.T) {
		img, err := fetcher.Fetch(ctx, server.URL+"/small.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MimeType)
		assert.Equal(t, small, img.Payload)
		assert.False(t, img.Resized)
		assert.Equal(t, 40, img.Width)
	})

	t.Run("large image is bounded", func(t *testing.T) {
		img, err := fetcher.Fetch(ctx, server.URL+"/large.png")
		require.NoError(t, err)
		assert.True(t, img.Resized)
		assert.Equal(t, domain.MAX_IMAGE_DIMENSION, img.Width)
		assert.LessOrEqual(t, img.Height, domain.MAX_IMAGE_DIMENSION)
	})

	t.Run("content is sniffed, not trusted from headers", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, server.URL+"/page.html")
		assert.ErrorIs(t, err, media.ErrNotImage)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, server.URL+"/missing.png")
		require.Error(t, err)
		assert.True(t, adapter.IsNotFound(err))
	})
}

func TestFetcher_Prepare(t *testing.T) {
	fetcher := media.NewFetcher(adapter.NewHTTPClient(time.Second), time.Second)

	_, err := fetcher.Prepare(nil)
	assert.ErrorIs(t, err, media.ErrEmptyPayload)

	img, err := fetcher.Prepare(pngBytes(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MimeType)

	// RIFF....WEBPVP8 header: sniffed as webp and passed through undecoded
	webp := append([]byte("RIFF\x1a\x00\x00\x00WEBPVP8 "), make([]byte, 16)...)
	img, err = fetcher.Prepare(webp)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.MimeType)
	assert.Equal(t, webp, img.Payload)
}
