// Package sniffer resolves ambiguous media types with a metadata-only network
// probe. Servers sometimes return a video at what a metadata record claims is
// an image URL; the probe inspects the reported Content-Type to catch that.
package sniffer

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/logger"
)

// Verdict is the result of sniffing a URL
type Verdict string

const (
	// VerdictInconclusive means the probe failed or the content type matched
	// neither video nor GIF. Callers proceed with their pre-sniff default.
	VerdictInconclusive Verdict = "inconclusive"
	// VerdictVideo means the server reported a video content type
	VerdictVideo Verdict = "video"
	// VerdictGif means the server reported a GIF content type
	VerdictGif Verdict = "gif"
)

// detectionBytes is how much of the resource body is fetched for byte-level
// detection when the server omits a Content-Type header
const detectionBytes = 512

// Sniffer defines the interface for probing a URL's actual media type
//
//go:generate mockgen -source=sniffer.go -destination=../../mocks/sniffer.go -package=mocks -mock_names=Sniffer=MockSniffer
type Sniffer interface {
	// Sniff probes the URL and classifies the server-reported content type.
	// Network failures and non-2xx responses are inconclusive, never an error.
	Sniff(ctx context.Context, url string) Verdict
}

type sniffer struct {
	httpClient adapter.HTTPClient
}

// New creates a new content sniffer
func New(httpClient adapter.HTTPClient) Sniffer {
	return &sniffer{httpClient: httpClient}
}

func (s *sniffer) Sniff(ctx context.Context, url string) Verdict {
	contentType, ok := s.headContentType(ctx, url)
	if !ok {
		return VerdictInconclusive
	}

	if contentType == "" {
		// Server did not report a content type, fall back to inspecting the
		// first bytes of the body
		contentType = s.detectContentType(ctx, url)
	}

	return classifyContentType(contentType)
}

// headContentType performs the HEAD probe and returns the Content-Type header.
// ok is false when the request failed or returned a non-2xx status.
func (s *sniffer) headContentType(ctx context.Context, url string) (string, bool) {
	resp, err := s.httpClient.Head(ctx, url)
	if err != nil {
		logger.DebugCtx(ctx, "HEAD probe failed", zap.String("url", url), zap.Error(err))
		return "", false
	}
	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.DebugCtx(ctx, "HEAD probe returned non-OK status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return "", false
	}

	return resp.Header.Get("Content-Type"), true
}

// detectContentType downloads the first bytes of the resource and detects the
// MIME type from content. Returns an empty string when detection fails.
func (s *sniffer) detectContentType(ctx context.Context, url string) string {
	content, err := s.httpClient.GetPartialContent(ctx, url, detectionBytes)
	if err != nil {
		logger.DebugCtx(ctx, "failed to download content for MIME detection",
			zap.String("url", url),
			zap.Error(err))
		return ""
	}

	mtype := mimetype.Detect(content)
	if mtype == nil {
		return ""
	}

	logger.DebugCtx(ctx, "detected MIME type from content",
		zap.String("url", url),
		zap.String("mimeType", mtype.String()))

	return mtype.String()
}

func classifyContentType(contentType string) Verdict {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "video"):
		return VerdictVideo
	case strings.Contains(ct, "gif"):
		return VerdictGif
	default:
		return VerdictInconclusive
	}
}
