// Package messaging publishes collectible lifecycle events to the message
// broker so downstream consumers (feed builders, caches) can react to freshly
// normalized records without polling the API.
package messaging

import (
	"context"
	"time"

	"github.com/soundvine/collectibles-indexer/internal/domain"
)

// CollectibleEvent is the message emitted after a collectible is normalized
type CollectibleEvent struct {
	Wallet       string              `json:"wallet"`
	Provider     domain.Provider     `json:"provider"`
	Collectible  *domain.Collectible `json:"collectible"`
	NormalizedAt time.Time           `json:"normalized_at"`
}

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishCollectibleNormalized publishes a normalized-collectible event
	PublishCollectibleNormalized(ctx context.Context, event *CollectibleEvent) error
	// Close closes the connection
	Close()
}
