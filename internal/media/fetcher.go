package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
)

var (
	// ErrNotImage is returned when the payload is not an image
	ErrNotImage = errors.New("payload is not an image")
	// ErrEmptyPayload is returned for zero-length payloads
	ErrEmptyPayload = errors.New("empty image payload")
)

// decodable lists the formats imaging can decode and re-encode
var decodable = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/tiff": imaging.TIFF,
	"image/bmp":  imaging.BMP,
}

// Image is a downloaded image ready to be stored
type Image struct {
	Payload  []byte
	MimeType string
	Width    int
	Height   int
	Resized  bool
}

// Fetcher downloads and normalizes image candidates
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher.go -package=mocks -mock_names=Fetcher=MockFetcher
type Fetcher interface {
	// Fetch downloads url; any failure means the candidate is rejected
	Fetch(ctx context.Context, url string) (*Image, error)
	// Prepare validates and normalizes an inline payload
	Prepare(payload []byte) (*Image, error)
}

type fetcher struct {
	httpClient   adapter.HTTPClient
	timeout      time.Duration
	maxDimension int
}

// NewFetcher creates a fetcher; timeout bounds each download
func NewFetcher(httpClient adapter.HTTPClient, timeout time.Duration) Fetcher {
	return &fetcher{
		httpClient:   httpClient,
		timeout:      timeout,
		maxDimension: domain.MAX_IMAGE_DIMENSION,
	}
}

func (f *fetcher) Fetch(ctx context.Context, url string) (*Image, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.httpClient.GetBytes(ctx, url, map[string]string{"Accept": "image/*"})
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	img, err := f.Prepare(resp.Body)
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Image downloaded",
		zap.String("url", url),
		zap.String("mimeType", img.MimeType),
		zap.Int("bytes", len(img.Payload)),
		zap.Bool("resized", img.Resized),
	)

	return img, nil
}

// Prepare sniffs the payload, then bounds decodable formats to the maximum dimension.
// Formats imaging cannot decode (webp, avif) are kept as they are.
func (f *fetcher) Prepare(payload []byte) (*Image, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	mime := mimetype.Detect(payload)
	mimeType := strings.SplitN(mime.String(), ";", 2)[0]
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}

	format, ok := decodable[mimeType]
	if !ok {
		return &Image{Payload: payload, MimeType: mimeType}, nil
	}

	src, err := imaging.Decode(bytes.NewReader(payload), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= f.maxDimension && bounds.Dy() <= f.maxDimension {
		return &Image{Payload: payload, MimeType: mimeType, Width: bounds.Dx(), Height: bounds.Dy()}, nil
	}

	return f.resize(src, format, mimeType)
}

func (f *fetcher) resize(src image.Image, format imaging.Format, mimeType string) (*Image, error) {
	dst := imaging.Fit(src, f.maxDimension, f.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := dst.Bounds()
	return &Image{
		Payload:  buf.Bytes(),
		MimeType: mimeType,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Resized:  true,
	}, nil
}
