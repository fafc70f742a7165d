package metaplex

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/ratelimit"
)

const PROVIDER_NAME = "metaplex"

// metadataURLLength is the length of an Arweave transaction path, which is
// where Metaplex metadata accounts point in practice. The on-chain account
// data has no explicit URL length field, so the decoder takes the host plus
// a fixed-length path and trims the zero padding.
const metadataURLLength = 44

var (
	ErrNoMetadataURL = fmt.Errorf("no metadata url found in account data")
)

// Client defines the interface for Metaplex client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/metaplex_client.go -package=mocks -mock_names=Client=MockMetaplexClient
type Client interface {
	// GetNFTsByOwner fetches the metadata records of all NFTs held by a wallet.
	// Records whose metadata cannot be located or parsed are skipped.
	GetNFTsByOwner(ctx context.Context, ownerAddress string) ([]NFT, error)

	// GetNFT fetches and parses a single metadata record
	GetNFT(ctx context.Context, metadataURL string) (*NFT, error)
}

// MetaplexClient implements the Metaplex client on top of a token account
// gateway that serves raw metadata account data by owner
type MetaplexClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	json           adapter.JSON
}

// NewClient creates a new Metaplex client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, json adapter.JSON) Client {
	return &MetaplexClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		json:           json,
	}
}

// GetNFTsByOwner fetches the metadata records of all NFTs held by a wallet
func (c *MetaplexClient) GetNFTsByOwner(ctx context.Context, ownerAddress string) ([]NFT, error) {
	reqURL := fmt.Sprintf("%s/accounts?owner=%s", c.apiURL, url.QueryEscape(ownerAddress))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Metaplex accounts API: %w", err)
	}

	var response accountsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Metaplex accounts response: %w", err)
	}

	nfts := make([]NFT, 0, len(response.Accounts))
	for _, account := range response.Accounts {
		nft, err := c.resolveAccount(ctx, account)
		if err != nil {
			logger.WarnCtx(ctx, "skipping unresolvable metadata account",
				zap.String("owner", ownerAddress),
				zap.Error(err))
			continue
		}
		nfts = append(nfts, *nft)
	}

	return nfts, nil
}

// GetNFT fetches and parses a single metadata record
func (c *MetaplexClient) GetNFT(ctx context.Context, metadataURL string) (*NFT, error) {
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, metadataURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from %s: %w", metadataURL, err)
	}

	var nft NFT
	if err := c.json.Unmarshal(respBody, &nft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata from %s: %w", metadataURL, err)
	}

	return &nft, nil
}

// resolveAccount decodes a token account's metadata account data and fetches
// the metadata record it points to
func (c *MetaplexClient) resolveAccount(ctx context.Context, account tokenAccount) (*NFT, error) {
	data, err := base64.StdEncoding.DecodeString(account.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode account data: %w", err)
	}

	metadataURL, err := ExtractMetadataURL(data)
	if err != nil {
		return nil, err
	}

	return c.GetNFT(ctx, metadataURL)
}

// ExtractMetadataURL locates the metadata URL embedded in raw metadata
// account data. The account layout stores the URL as a zero-padded UTF-8
// region, so the URL is recovered by scanning for the scheme, taking the
// host up to the first path separator plus the fixed-length path, and
// trimming the padding.
func ExtractMetadataURL(data []byte) (string, error) {
	str := string(data)

	start := strings.Index(str, "https://")
	if start == -1 {
		return "", ErrNoMetadataURL
	}

	hostStart := start + len("https://")
	pathSep := strings.Index(str[hostStart:], "/")
	if pathSep == -1 {
		return "", ErrNoMetadataURL
	}

	end := hostStart + pathSep + metadataURLLength
	if end > len(str) {
		end = len(str)
	}

	return strings.TrimRight(str[start:end], "\x00"), nil
}
