package store

import (
	"context"
	"time"

	"github.com/soundvine/collectibles-indexer/internal/domain"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ReplaceWalletCollectibles replaces the cached snapshot for a wallet and
	// provider with a freshly normalized one
	ReplaceWalletCollectibles(ctx context.Context, wallet string, provider domain.Provider, collectibles []domain.Collectible) error
	// GetWalletCollectibles returns the cached snapshot for a wallet and
	// provider along with its refresh time. An empty snapshot returns a zero
	// time.
	GetWalletCollectibles(ctx context.Context, wallet string, provider domain.Provider) ([]domain.Collectible, time.Time, error)
}
