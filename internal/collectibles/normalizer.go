package collectibles

import (
	"context"
	"errors"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/messaging"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
	"github.com/soundvine/collectibles-indexer/internal/store"
	"github.com/soundvine/collectibles-indexer/internal/types"
)

var (
	// ErrInvalidWalletAddress is returned when a wallet address fails the
	// provider's address format check
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	// ErrUnsupportedProvider is returned for unknown provider names
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// Config holds configuration for the normalizer service
type Config struct {
	// MaxWorkers bounds the per-wallet normalization fan-out
	MaxWorkers int
	// MaxQueueSize bounds the number of queued normalization tasks
	MaxQueueSize int
	// CacheTTL is how long a cached wallet snapshot stays fresh. Zero
	// disables cache reads.
	CacheTTL time.Duration
}

// Normalizer is the orchestration service: it fetches raw records from a
// provider, fans out per-asset normalization, merges event context, caches
// the snapshot and publishes normalized events.
//
//go:generate mockgen -source=normalizer.go -destination=../mocks/normalizer.go -package=mocks -mock_names=Normalizer=MockNormalizer
type Normalizer interface {
	// WalletCollectibles returns the normalized collectibles of a wallet,
	// served from cache when fresh
	WalletCollectibles(ctx context.Context, wallet string, provider domain.Provider) ([]domain.Collectible, error)
	// NormalizeAsset normalizes a single submitted OpenSea asset record
	NormalizeAsset(ctx context.Context, asset *opensea.Asset, wallet string) (*domain.Collectible, error)
	// NormalizeNFT normalizes a single submitted Metaplex NFT record
	NormalizeNFT(ctx context.Context, nft *metaplex.NFT, wallet string) (*domain.Collectible, error)
}

type normalizer struct {
	openseaClient   opensea.Client
	metaplexClient  metaplex.Client
	openseaAdapter  OpenSeaAdapter
	metaplexAdapter MetaplexAdapter
	assembler       *Assembler
	store           store.Store
	publisher       messaging.Publisher
	clock           adapter.Clock
	config          Config
}

// NewNormalizer creates the normalizer service. The store and publisher are
// optional; a nil store disables caching and a nil publisher disables event
// emission.
func NewNormalizer(
	openseaClient opensea.Client,
	metaplexClient metaplex.Client,
	openseaAdapter OpenSeaAdapter,
	metaplexAdapter MetaplexAdapter,
	assembler *Assembler,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) Normalizer {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 10
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 1000
	}
	return &normalizer{
		openseaClient:   openseaClient,
		metaplexClient:  metaplexClient,
		openseaAdapter:  openseaAdapter,
		metaplexAdapter: metaplexAdapter,
		assembler:       assembler,
		store:           st,
		publisher:       publisher,
		clock:           clock,
		config:          cfg,
	}
}

// WalletCollectibles returns the normalized collectibles of a wallet
func (n *normalizer) WalletCollectibles(ctx context.Context, wallet string, provider domain.Provider) ([]domain.Collectible, error) {
	if err := validateWallet(wallet, provider); err != nil {
		return nil, err
	}

	if cached, ok := n.cachedSnapshot(ctx, wallet, provider); ok {
		return cached, nil
	}

	var collectibles []domain.Collectible
	var err error
	switch provider {
	case domain.ProviderOpenSea:
		collectibles, err = n.fetchOpenSea(ctx, wallet)
	case domain.ProviderMetaplex:
		collectibles, err = n.fetchMetaplex(ctx, wallet)
	default:
		return nil, ErrUnsupportedProvider
	}
	if err != nil {
		return nil, err
	}

	n.cacheSnapshot(ctx, wallet, provider, collectibles)
	n.publishNormalized(ctx, wallet, provider, collectibles)

	return collectibles, nil
}

// NormalizeAsset normalizes a single submitted OpenSea asset record
func (n *normalizer) NormalizeAsset(ctx context.Context, asset *opensea.Asset, wallet string) (*domain.Collectible, error) {
	return n.openseaAdapter.Normalize(ctx, asset, wallet)
}

// NormalizeNFT normalizes a single submitted Metaplex NFT record
func (n *normalizer) NormalizeNFT(ctx context.Context, nft *metaplex.NFT, wallet string) (*domain.Collectible, error) {
	return n.metaplexAdapter.Normalize(ctx, nft, wallet)
}

// fetchOpenSea fetches, filters and normalizes a wallet's OpenSea assets,
// then merges creation and transfer event context
func (n *normalizer) fetchOpenSea(ctx context.Context, wallet string) ([]domain.Collectible, error) {
	assets, err := n.openseaClient.GetAssets(ctx, wallet)
	if err != nil {
		return nil, err
	}

	valid := make([]opensea.Asset, 0, len(assets))
	for i := range assets {
		if IsValidAsset(&assets[i]) {
			valid = append(valid, assets[i])
		}
	}

	collectibles, err := n.fanOut(ctx, len(valid), func(i int) (*domain.Collectible, error) {
		return n.openseaAdapter.Normalize(ctx, &valid[i], wallet)
	})
	if err != nil {
		return nil, err
	}

	n.applyEvents(ctx, wallet, collectibles)

	result := make([]domain.Collectible, 0, len(collectibles))
	for _, c := range collectibles {
		result = append(result, *c)
	}
	return result, nil
}

// fetchMetaplex fetches and normalizes a wallet's Metaplex NFTs
func (n *normalizer) fetchMetaplex(ctx context.Context, wallet string) ([]domain.Collectible, error) {
	nfts, err := n.metaplexClient.GetNFTsByOwner(ctx, wallet)
	if err != nil {
		return nil, err
	}

	collectibles, err := n.fanOut(ctx, len(nfts), func(i int) (*domain.Collectible, error) {
		return n.metaplexAdapter.Normalize(ctx, &nfts[i], wallet)
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Collectible, 0, len(collectibles))
	for _, c := range collectibles {
		result = append(result, *c)
	}
	return result, nil
}

// fanOut normalizes records concurrently through a bounded worker pool.
// A failing record is logged and dropped; it never aborts its siblings.
// Returned collectibles keep submission order.
func (n *normalizer) fanOut(ctx context.Context, count int, normalize func(i int) (*domain.Collectible, error)) ([]*domain.Collectible, error) {
	pool := pond.NewResultPool[*domain.Collectible](
		n.config.MaxWorkers,
		pond.WithQueueSize(n.config.MaxQueueSize),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i := 0; i < count; i++ {
		i := i
		group.Submit(func() *domain.Collectible {
			collectible, err := normalize(i)
			if err != nil {
				logger.WarnCtx(ctx, "skipping unnormalizable record", zap.Error(err))
				return nil
			}
			return collectible
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, err
	}

	collectibles := make([]*domain.Collectible, 0, len(results))
	for _, c := range results {
		if c != nil {
			collectibles = append(collectibles, c)
		}
	}
	return collectibles, nil
}

// applyEvents merges creation and transfer event context into the
// collectibles. Event fetch failures degrade to records without timestamps.
func (n *normalizer) applyEvents(ctx context.Context, wallet string, collectibles []*domain.Collectible) {
	byID := make(map[string]*domain.Collectible, len(collectibles))
	for _, c := range collectibles {
		byID[c.ID] = c
	}

	creations, err := n.openseaClient.GetEvents(ctx, wallet, opensea.EventTypeCreated)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch creation events",
			zap.String("wallet", wallet),
			zap.Error(err))
	} else {
		n.assembler.ApplyCreationEvents(ctx, byID, creations)
	}

	transfers, err := n.openseaClient.GetEvents(ctx, wallet, opensea.EventTypeTransfer)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch transfer events",
			zap.String("wallet", wallet),
			zap.Error(err))
	} else {
		n.assembler.ApplyTransferEvents(ctx, byID, transfers)
	}
}

// cachedSnapshot returns the cached wallet snapshot when the cache is
// enabled, populated and fresh
func (n *normalizer) cachedSnapshot(ctx context.Context, wallet string, provider domain.Provider) ([]domain.Collectible, bool) {
	if n.store == nil || n.config.CacheTTL <= 0 {
		return nil, false
	}

	cached, refreshedAt, err := n.store.GetWalletCollectibles(ctx, wallet, provider)
	if err != nil {
		logger.WarnCtx(ctx, "wallet snapshot read failed",
			zap.String("wallet", wallet),
			zap.Error(err))
		return nil, false
	}
	if len(cached) == 0 || n.clock.Since(refreshedAt) >= n.config.CacheTTL {
		return nil, false
	}
	return cached, true
}

// cacheSnapshot persists a freshly normalized snapshot. Failure is logged,
// never surfaced: the caller still gets its result.
func (n *normalizer) cacheSnapshot(ctx context.Context, wallet string, provider domain.Provider, collectibles []domain.Collectible) {
	if n.store == nil {
		return
	}
	if err := n.store.ReplaceWalletCollectibles(ctx, wallet, provider, collectibles); err != nil {
		logger.WarnCtx(ctx, "wallet snapshot write failed",
			zap.String("wallet", wallet),
			zap.Error(err))
	}
}

// publishNormalized emits one event per normalized collectible
func (n *normalizer) publishNormalized(ctx context.Context, wallet string, provider domain.Provider, collectibles []domain.Collectible) {
	if n.publisher == nil {
		return
	}
	for i := range collectibles {
		event := &messaging.CollectibleEvent{
			Wallet:       wallet,
			Provider:     provider,
			Collectible:  &collectibles[i],
			NormalizedAt: n.clock.Now(),
		}
		if err := n.publisher.PublishCollectibleNormalized(ctx, event); err != nil {
			logger.WarnCtx(ctx, "failed to publish normalized event",
				zap.String("collectibleID", collectibles[i].ID),
				zap.Error(err))
		}
	}
}

// validateWallet checks the wallet address format the provider expects
func validateWallet(wallet string, provider domain.Provider) error {
	switch provider {
	case domain.ProviderOpenSea:
		if !types.IsEthereumAddress(wallet) {
			return ErrInvalidWalletAddress
		}
	case domain.ProviderMetaplex:
		if !types.IsSolanaAddress(wallet) {
			return ErrInvalidWalletAddress
		}
	default:
		return ErrUnsupportedProvider
	}
	return nil
}
