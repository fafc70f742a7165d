package opensea

import (
	"context"
	"fmt"
	"net/url"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/ratelimit"
)

const PROVIDER_NAME = "opensea"

// pageSize is the maximum number of records per request supported by the API
const pageSize = 50

// Client defines the interface for OpenSea client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/opensea_client.go -package=mocks -mock_names=Client=MockOpenSeaClient
type Client interface {
	// GetAssets fetches all assets owned by a wallet, following pagination
	GetAssets(ctx context.Context, ownerAddress string) ([]Asset, error)

	// GetEvents fetches asset events of the given type for a wallet, following pagination
	GetEvents(ctx context.Context, accountAddress string, eventType EventType) ([]Event, error)
}

// OpenSeaClient implements the OpenSea client
type OpenSeaClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new OpenSea client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &OpenSeaClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		json:           json,
	}
}

// GetAssets fetches all assets owned by a wallet, following pagination
func (c *OpenSeaClient) GetAssets(ctx context.Context, ownerAddress string) ([]Asset, error) {
	var assets []Asset

	for offset := 0; ; offset += pageSize {
		reqURL := fmt.Sprintf("%s/assets?owner=%s&limit=%d&offset=%d",
			c.apiURL,
			url.QueryEscape(ownerAddress),
			pageSize,
			offset,
		)

		respBody, err := c.get(ctx, reqURL)
		if err != nil {
			return nil, fmt.Errorf("failed to call OpenSea assets API: %w", err)
		}

		var response assetsResponse
		if err := c.json.Unmarshal(respBody, &response); err != nil {
			return nil, fmt.Errorf("failed to unmarshal OpenSea assets response: %w", err)
		}

		assets = append(assets, response.Assets...)
		if len(response.Assets) < pageSize {
			break
		}
	}

	return assets, nil
}

// GetEvents fetches asset events of the given type for a wallet, following pagination
func (c *OpenSeaClient) GetEvents(ctx context.Context, accountAddress string, eventType EventType) ([]Event, error) {
	var events []Event

	for offset := 0; ; offset += pageSize {
		reqURL := fmt.Sprintf("%s/events?account_address=%s&event_type=%s&limit=%d&offset=%d",
			c.apiURL,
			url.QueryEscape(accountAddress),
			url.QueryEscape(string(eventType)),
			pageSize,
			offset,
		)

		respBody, err := c.get(ctx, reqURL)
		if err != nil {
			return nil, fmt.Errorf("failed to call OpenSea events API: %w", err)
		}

		var response eventsResponse
		if err := c.json.Unmarshal(respBody, &response); err != nil {
			return nil, fmt.Errorf("failed to unmarshal OpenSea events response: %w", err)
		}

		events = append(events, response.AssetEvents...)
		if len(response.AssetEvents) < pageSize {
			break
		}
	}

	return events, nil
}

// get performs a rate-limited GET request with the API key header
func (c *OpenSeaClient) get(ctx context.Context, url string) ([]byte, error) {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"X-API-KEY": c.apiKey}
	}

	return ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url, headers)
	})
}
