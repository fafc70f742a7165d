package domain

import (
	"strings"
	"time"
)

// Provider identifies the upstream data provider an asset record came from
type Provider string

const (
	ProviderOpenSea  Provider = "opensea"
	ProviderMetaplex Provider = "metaplex"
)

// IsValidProvider checks if a provider is known
func IsValidProvider(p Provider) bool {
	return p == ProviderOpenSea || p == ProviderMetaplex
}

// MediaType represents the resolved display media type of a collectible
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeGif   MediaType = "gif"
)

// Media is the resolved media classification for an asset record.
// It is constructed whole by a single resolver, never mutated across
// branches: URL carries the primary media source for Type, FrameURL an
// optional still-image poster.
type Media struct {
	Type     MediaType
	URL      string
	FrameURL *string
}

// Collectible is the normalized display record for an NFT.
// Exactly one of ImageURL, VideoURL, GifURL is non-nil and matches Type.
// FrameURL may be set for any type and is used as a poster/thumbnail.
type Collectible struct {
	ID                   string     `json:"id"`
	TokenID              string     `json:"token_id"`
	Name                 *string    `json:"name"`
	Description          *string    `json:"description"`
	Type                 MediaType  `json:"type"`
	FrameURL             *string    `json:"frame_url"`
	ImageURL             *string    `json:"image_url"`
	VideoURL             *string    `json:"video_url"`
	GifURL               *string    `json:"gif_url"`
	IsOwned              bool       `json:"is_owned"`
	DateCreated          *time.Time `json:"date_created"`
	DateLastTransferred  *time.Time `json:"date_last_transferred"`
	ExternalLink         *string    `json:"external_link"`
	PermaLink            *string    `json:"perma_link"`
	AssetContractAddress *string    `json:"asset_contract_address"`
	Provider             Provider   `json:"provider"`
	Wallet               string     `json:"wallet"`
}

// MediaURL returns the populated media source URL for the collectible's type
func (c *Collectible) MediaURL() string {
	switch c.Type {
	case MediaTypeGif:
		if c.GifURL != nil {
			return *c.GifURL
		}
	case MediaTypeVideo:
		if c.VideoURL != nil {
			return *c.VideoURL
		}
	case MediaTypeImage:
		if c.ImageURL != nil {
			return *c.ImageURL
		}
	}
	return ""
}

// ApplyMedia populates the type-specific URL fields from a resolved Media
func (c *Collectible) ApplyMedia(m Media) {
	c.Type = m.Type
	c.FrameURL = m.FrameURL
	c.ImageURL = nil
	c.VideoURL = nil
	c.GifURL = nil
	url := m.URL
	switch m.Type {
	case MediaTypeGif:
		c.GifURL = &url
	case MediaTypeVideo:
		c.VideoURL = &url
	case MediaTypeImage:
		c.ImageURL = &url
	}
}

// CompositeID joins identifier parts with the ":::" separator, dropping empty parts
func CompositeID(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ":::")
}
