// Package collectibles turns raw provider asset records into normalized
// Collectible records: it classifies each record's display media type,
// resolves the media and poster URLs, and merges in event context such as
// creation and transfer timestamps.
package collectibles

import (
	"context"
	"errors"

	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
)

// ErrNoResolvableMedia is returned when a record carries no media URL at all,
// so not even a degraded image collectible can be produced
var ErrNoResolvableMedia = errors.New("record has no resolvable media url")

// OpenSeaAdapter normalizes OpenSea asset records
//
//go:generate mockgen -source=adapter.go -destination=../mocks/collectibles_adapters.go -package=mocks
type OpenSeaAdapter interface {
	// Normalize maps a raw asset record to a Collectible. It always returns
	// a usable record: classification or frame-extraction failures degrade
	// to a best-effort image collectible instead of propagating.
	Normalize(ctx context.Context, asset *opensea.Asset, wallet string) (*domain.Collectible, error)
}

// MetaplexAdapter normalizes Metaplex NFT metadata records
type MetaplexAdapter interface {
	// Normalize maps a raw NFT record to a Collectible. Records matching no
	// media resolver degrade to an image collectible using the first
	// available URL; ErrNoResolvableMedia is returned only when the record
	// carries no URL at all.
	Normalize(ctx context.Context, nft *metaplex.NFT, wallet string) (*domain.Collectible, error)
}
