package dto

import (
	"time"

	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
)

// CollectiblesResponse is the wallet collectibles listing response
type CollectiblesResponse struct {
	Wallet       string               `json:"wallet"`
	Provider     domain.Provider      `json:"provider"`
	Collectibles []domain.Collectible `json:"collectibles"`
	Total        int                  `json:"total"`
}

// NormalizeRequest is the body of a single-record normalization request.
// Exactly one of Asset and NFT must be set, matching Provider.
type NormalizeRequest struct {
	Wallet   string         `json:"wallet" binding:"required"`
	Provider string         `json:"provider" binding:"required"`
	Asset    *opensea.Asset `json:"asset,omitempty"`
	NFT      *metaplex.NFT  `json:"nft,omitempty"`
}

// NormalizeResponse wraps a single normalized collectible
type NormalizeResponse struct {
	Collectible *domain.Collectible `json:"collectible"`
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
