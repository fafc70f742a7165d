// Package uri resolves NFT metadata URIs to fetchable URLs. Metadata records
// regularly carry ipfs:// and ar:// URIs, which need to be mapped onto a
// working public gateway before any HTTP probe or fetch can happen.
package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/logger"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try
	ArweaveGateways []string
}

// Resolver defines the interface for resolving URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves the URI to a canonical URL.
	// It handles the ipfs:// and ar:// schemes by probing the configured
	// gateways with a HEAD request and returning the first working one.
	// Plain HTTP(S) URLs are returned unchanged without a probe.
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

// NewResolver creates a new URI resolver
func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return r.probeGateways(ctx, r.ipfsCandidates(cid))
	}

	if txID, ok := strings.CutPrefix(uri, "ar://"); ok {
		return r.probeGateways(ctx, r.arweaveCandidates(txID))
	}

	// IPFS gateway URLs (e.g. https://example.com/ipfs/QmXxx) are re-resolved
	// across the configured gateways when their own host is down
	if strings.Contains(uri, "/ipfs/") {
		parts := strings.Split(uri, "/ipfs/")
		if len(parts) >= 2 {
			if url, err := r.probeGateways(ctx, append([]string{uri}, r.ipfsCandidates(parts[1])...)); err == nil {
				return url, nil
			}
		}
	}

	// Regular HTTP(S) URL
	return uri, nil
}

func (r *resolver) ipfsCandidates(cid string) []string {
	urls := make([]string, 0, len(r.config.IPFSGateways))
	for _, gw := range r.config.IPFSGateways {
		urls = append(urls, fmt.Sprintf("%s/ipfs/%s", strings.TrimSuffix(gw, "/"), cid))
	}
	return urls
}

func (r *resolver) arweaveCandidates(txID string) []string {
	urls := make([]string, 0, len(r.config.ArweaveGateways))
	for _, gw := range r.config.ArweaveGateways {
		urls = append(urls, fmt.Sprintf("%s/%s", strings.TrimSuffix(gw, "/"), txID))
	}
	return urls
}

// probeGateways tries all candidate URLs in parallel with HEAD requests and
// returns the first working one
func (r *resolver) probeGateways(ctx context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no gateways configured")
	}

	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(candidates))
	var wg sync.WaitGroup

	for _, candidate := range candidates {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			resp, err := r.httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(candidate)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Return the first successful result
	for res := range resultCh {
		if res.err == nil {
			logger.DebugCtx(ctx, "found working gateway", zap.String("url", res.url))
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working gateway found among %d candidates", len(candidates))
}
