package opensea

// AssetContract holds the contract a token was minted under
type AssetContract struct {
	Address *string `json:"address"`
}

// Account represents a wallet referenced by an event
type Account struct {
	Address string `json:"address"`
}

// Asset represents a raw asset record from the OpenSea API.
// The image and animation fields are candidate URLs of unknown content type;
// no field name guarantees the media kind.
type Asset struct {
	TokenID              string         `json:"token_id"`
	Name                 *string        `json:"name"`
	Description          *string        `json:"description"`
	ExternalLink         *string        `json:"external_link"`
	Permalink            *string        `json:"permalink"`
	AssetContract        *AssetContract `json:"asset_contract"`
	ImageURL             *string        `json:"image_url"`
	ImageOriginalURL     *string        `json:"image_original_url"`
	ImagePreviewURL      *string        `json:"image_preview_url"`
	ImageThumbnailURL    *string        `json:"image_thumbnail_url"`
	AnimationURL         *string        `json:"animation_url"`
	AnimationOriginalURL *string        `json:"animation_original_url"`
}

// ImageURLs returns the image candidate URLs in resolution-priority order
func (a *Asset) ImageURLs() []*string {
	return []*string{
		a.ImageURL,
		a.ImageOriginalURL,
		a.ImagePreviewURL,
		a.ImageThumbnailURL,
	}
}

// ContractAddress returns the asset's contract address or an empty string
func (a *Asset) ContractAddress() string {
	if a.AssetContract == nil || a.AssetContract.Address == nil {
		return ""
	}
	return *a.AssetContract.Address
}

// EventType identifies the kind of asset event
type EventType string

const (
	// EventTypeCreated marks asset creation (minting) events
	EventTypeCreated EventType = "created"
	// EventTypeTransfer marks asset transfer events
	EventTypeTransfer EventType = "transfer"
)

// Event represents an asset event from the OpenSea API
type Event struct {
	Asset       Asset     `json:"asset"`
	EventType   EventType `json:"event_type"`
	CreatedDate string    `json:"created_date"`
	FromAccount *Account  `json:"from_account"`
}

// assetsResponse is the response from the list-assets endpoint
type assetsResponse struct {
	Assets []Asset `json:"assets"`
}

// eventsResponse is the response from the list-events endpoint
type eventsResponse struct {
	AssetEvents []Event `json:"asset_events"`
}
