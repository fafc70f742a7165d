// Package gifframe extracts a still poster frame from animated GIFs.
package gifframe

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/framestore"
	"github.com/soundvine/collectibles-indexer/internal/logger"
)

// partialFetchBytes is an extremely heuristic 200KB. This should contain the
// first frame of most animated GIFs and then some, without downloading the
// whole file. Some GIFs may not decode from a partial body, so the full fetch
// remains as a fallback.
const partialFetchBytes = 200000

// Config holds frame extractor configuration
type Config struct {
	// SupportsPartialFetch enables the ranged-fetch fast path. Hosting
	// environments where partial GIF decoding renders incorrectly disable it
	// and always take the full fetch path.
	SupportsPartialFetch bool
}

// Extractor defines the interface for extracting a poster frame from a GIF URL
//
//go:generate mockgen -source=extractor.go -destination=../../mocks/gifframe.go -package=mocks -mock_names=Extractor=MockFrameExtractor
type Extractor interface {
	// ExtractFrame fetches the GIF at url, decodes (approximately) its first
	// frame and stores it as a PNG blob. It returns the stored frame's stable
	// URL. The name parameter is used for diagnostics only.
	ExtractFrame(ctx context.Context, url string, name string) (string, error)
}

type extractor struct {
	httpClient adapter.HTTPClient
	decoder    adapter.GIFDecoder
	encoder    adapter.ImageEncoder
	frames     framestore.Store
	config     Config
}

// New creates a new GIF frame extractor
func New(
	httpClient adapter.HTTPClient,
	decoder adapter.GIFDecoder,
	encoder adapter.ImageEncoder,
	frames framestore.Store,
	cfg Config,
) Extractor {
	return &extractor{
		httpClient: httpClient,
		decoder:    decoder,
		encoder:    encoder,
		frames:     frames,
		config:     cfg,
	}
}

// ExtractFrame fetches the GIF at url and stores its first frame as a PNG blob
func (e *extractor) ExtractFrame(ctx context.Context, url string, name string) (string, error) {
	if e.config.SupportsPartialFetch {
		frameURL, err := e.extractFromPartial(ctx, url)
		if err == nil {
			return frameURL, nil
		}
		logger.DebugCtx(ctx, "partial GIF frame extraction failed, falling back to full fetch",
			zap.String("url", url),
			zap.String("name", name),
			zap.Error(err))
	}

	frameURL, err := e.extractFromFull(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to extract frame from GIF %q: %w", name, err)
	}
	return frameURL, nil
}

// extractFromPartial decodes the first frame from a ranged fetch of the GIF
func (e *extractor) extractFromPartial(ctx context.Context, url string) (string, error) {
	data, err := e.httpClient.GetPartialContent(ctx, url, partialFetchBytes)
	if err != nil {
		return "", fmt.Errorf("ranged fetch failed: %w", err)
	}
	return e.storeFrame(data)
}

// extractFromFull decodes the first frame from a full download of the GIF
func (e *extractor) extractFromFull(ctx context.Context, url string) (string, error) {
	data, err := e.httpClient.GetBytes(ctx, url, nil)
	if err != nil {
		return "", fmt.Errorf("full fetch failed: %w", err)
	}
	return e.storeFrame(data)
}

func (e *extractor) storeFrame(data []byte) (string, error) {
	img, err := e.decoder.DecodeFirstFrame(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode GIF frame: %w", err)
	}

	var buf bytes.Buffer
	if err := e.encoder.EncodePNG(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode frame as PNG: %w", err)
	}

	return e.frames.Put(buf.Bytes(), "image/png"), nil
}
