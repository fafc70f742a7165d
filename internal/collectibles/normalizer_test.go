package collectibles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/collectibles"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/messaging"
	"github.com/soundvine/collectibles-indexer/internal/mocks"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
	"github.com/soundvine/collectibles-indexer/internal/types"
)

const validSolanaWallet = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"

type testNormalizerMocks struct {
	ctrl            *gomock.Controller
	openseaClient   *mocks.MockOpenSeaClient
	metaplexClient  *mocks.MockMetaplexClient
	openseaAdapter  *mocks.MockOpenSeaAdapter
	metaplexAdapter *mocks.MockMetaplexAdapter
	store           *mocks.MockStore
	publisher       *mocks.MockPublisher
	clock           *mocks.MockClock
}

func setupNormalizerMocks(t *testing.T) *testNormalizerMocks {
	ctrl := gomock.NewController(t)
	return &testNormalizerMocks{
		ctrl:            ctrl,
		openseaClient:   mocks.NewMockOpenSeaClient(ctrl),
		metaplexClient:  mocks.NewMockMetaplexClient(ctrl),
		openseaAdapter:  mocks.NewMockOpenSeaAdapter(ctrl),
		metaplexAdapter: mocks.NewMockMetaplexAdapter(ctrl),
		store:           mocks.NewMockStore(ctrl),
		publisher:       mocks.NewMockPublisher(ctrl),
		clock:           mocks.NewMockClock(ctrl),
	}
}

func (tm *testNormalizerMocks) newNormalizer(cfg collectibles.Config) collectibles.Normalizer {
	return collectibles.NewNormalizer(
		tm.openseaClient,
		tm.metaplexClient,
		tm.openseaAdapter,
		tm.metaplexAdapter,
		collectibles.NewAssembler(adapter.NewClock()),
		tm.store,
		tm.publisher,
		tm.clock,
		cfg,
	)
}

// newBareNormalizer builds a normalizer without cache or publisher
func (tm *testNormalizerMocks) newBareNormalizer() collectibles.Normalizer {
	return collectibles.NewNormalizer(
		tm.openseaClient,
		tm.metaplexClient,
		tm.openseaAdapter,
		tm.metaplexAdapter,
		collectibles.NewAssembler(adapter.NewClock()),
		nil,
		nil,
		tm.clock,
		collectibles.Config{},
	)
}

func imageCollectible(id string) *domain.Collectible {
	url := "https://cdn.example.com/" + id + ".png"
	return &domain.Collectible{
		ID:       id,
		TokenID:  id,
		Type:     domain.MediaTypeImage,
		ImageURL: &url,
		FrameURL: &url,
		IsOwned:  true,
	}
}

func TestWalletCollectibles_InvalidEthereumWallet(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	n := tm.newBareNormalizer()

	_, err := n.WalletCollectibles(context.Background(), "not-an-address", domain.ProviderOpenSea)
	assert.ErrorIs(t, err, collectibles.ErrInvalidWalletAddress)
}

func TestWalletCollectibles_InvalidSolanaWallet(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	n := tm.newBareNormalizer()

	// 0 and l are not base58 characters
	_, err := n.WalletCollectibles(context.Background(), "0lIO", domain.ProviderMetaplex)
	assert.ErrorIs(t, err, collectibles.ErrInvalidWalletAddress)
}

func TestWalletCollectibles_UnsupportedProvider(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	n := tm.newBareNormalizer()

	_, err := n.WalletCollectibles(context.Background(), testWallet, domain.Provider("rarible"))
	assert.ErrorIs(t, err, collectibles.ErrUnsupportedProvider)
}

func TestWalletCollectibles_OpenSeaFlow(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	assets := []opensea.Asset{
		*testAsset(func(a *opensea.Asset) {
			a.TokenID = "1"
			a.ImageURL = types.StringPtr("https://cdn.example.com/1.png")
		}),
		// invalid record: no URL any predicate accepts, filtered before fan-out
		*testAsset(func(a *opensea.Asset) {
			a.TokenID = "2"
		}),
	}

	tm.openseaClient.EXPECT().GetAssets(gomock.Any(), testWallet).Return(assets, nil)
	tm.openseaAdapter.EXPECT().
		Normalize(gomock.Any(), gomock.Any(), testWallet).
		Return(imageCollectible("1:::0xcontract"), nil)
	tm.openseaClient.EXPECT().
		GetEvents(gomock.Any(), testWallet, opensea.EventTypeCreated).
		Return(nil, nil)
	tm.openseaClient.EXPECT().
		GetEvents(gomock.Any(), testWallet, opensea.EventTypeTransfer).
		Return(nil, nil)

	n := tm.newBareNormalizer()

	result, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "1:::0xcontract", result[0].ID)
}

func TestWalletCollectibles_OpenSeaPerRecordFailureIsolated(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	assets := []opensea.Asset{
		*testAsset(func(a *opensea.Asset) {
			a.TokenID = "1"
			a.ImageURL = types.StringPtr("https://cdn.example.com/1.png")
		}),
		*testAsset(func(a *opensea.Asset) {
			a.TokenID = "2"
			a.ImageURL = types.StringPtr("https://cdn.example.com/2.png")
		}),
	}

	tm.openseaClient.EXPECT().GetAssets(gomock.Any(), testWallet).Return(assets, nil)
	tm.openseaAdapter.EXPECT().
		Normalize(gomock.Any(), gomock.Any(), testWallet).
		DoAndReturn(func(_ context.Context, asset *opensea.Asset, _ string) (*domain.Collectible, error) {
			if asset.TokenID == "1" {
				return nil, errors.New("upstream gone")
			}
			return imageCollectible("2:::0xcontract"), nil
		}).
		Times(2)
	tm.openseaClient.EXPECT().GetEvents(gomock.Any(), testWallet, gomock.Any()).Return(nil, nil).Times(2)

	n := tm.newBareNormalizer()

	result, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "2:::0xcontract", result[0].ID)
}

func TestWalletCollectibles_OpenSeaEventFetchFailureDegrades(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	assets := []opensea.Asset{
		*testAsset(func(a *opensea.Asset) {
			a.TokenID = "1"
			a.ImageURL = types.StringPtr("https://cdn.example.com/1.png")
		}),
	}

	tm.openseaClient.EXPECT().GetAssets(gomock.Any(), testWallet).Return(assets, nil)
	tm.openseaAdapter.EXPECT().
		Normalize(gomock.Any(), gomock.Any(), testWallet).
		Return(imageCollectible("1:::0xcontract"), nil)
	tm.openseaClient.EXPECT().
		GetEvents(gomock.Any(), testWallet, gomock.Any()).
		Return(nil, errors.New("events endpoint down")).
		Times(2)

	n := tm.newBareNormalizer()

	result, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Nil(t, result[0].DateCreated)
	assert.Nil(t, result[0].DateLastTransferred)
}

func TestWalletCollectibles_OpenSeaFetchError(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	tm.openseaClient.EXPECT().
		GetAssets(gomock.Any(), testWallet).
		Return(nil, errors.New("429 too many requests"))

	n := tm.newBareNormalizer()

	_, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.Error(t, err)
}

func TestWalletCollectibles_MetaplexFlow(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	nfts := []metaplex.NFT{
		*testNFT(func(nft *metaplex.NFT) { nft.Image = "https://cdn.example.com/1.png" }),
	}

	tm.metaplexClient.EXPECT().GetNFTsByOwner(gomock.Any(), validSolanaWallet).Return(nfts, nil)
	tm.metaplexAdapter.EXPECT().
		Normalize(gomock.Any(), gomock.Any(), validSolanaWallet).
		Return(imageCollectible("SONG:::First Pressing"), nil)

	n := tm.newBareNormalizer()

	result, err := n.WalletCollectibles(context.Background(), validSolanaWallet, domain.ProviderMetaplex)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestWalletCollectibles_CacheHit(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	cached := []domain.Collectible{*imageCollectible("1:::0xcontract")}
	refreshedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea).
		Return(cached, refreshedAt, nil)
	tm.clock.EXPECT().Since(refreshedAt).Return(time.Minute)

	n := tm.newNormalizer(collectibles.Config{CacheTTL: 10 * time.Minute})

	result, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestWalletCollectibles_CacheStaleRefetches(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	stale := []domain.Collectible{*imageCollectible("1:::0xcontract")}
	refreshedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea).
		Return(stale, refreshedAt, nil)
	tm.clock.EXPECT().Since(refreshedAt).Return(time.Hour)

	tm.openseaClient.EXPECT().GetAssets(gomock.Any(), testWallet).Return(nil, nil)
	tm.openseaClient.EXPECT().GetEvents(gomock.Any(), testWallet, gomock.Any()).Return(nil, nil).Times(2)
	tm.store.EXPECT().
		ReplaceWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea, gomock.Any()).
		Return(nil)

	n := tm.newNormalizer(collectibles.Config{CacheTTL: 10 * time.Minute})

	result, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestWalletCollectibles_CacheWriteFailureNotSurfaced(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea).
		Return(nil, time.Time{}, nil)

	tm.openseaClient.EXPECT().GetAssets(gomock.Any(), testWallet).Return(nil, nil)
	tm.openseaClient.EXPECT().GetEvents(gomock.Any(), testWallet, gomock.Any()).Return(nil, nil).Times(2)
	tm.store.EXPECT().
		ReplaceWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea, gomock.Any()).
		Return(errors.New("connection refused"))

	n := tm.newNormalizer(collectibles.Config{CacheTTL: 10 * time.Minute})

	_, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
}

func TestWalletCollectibles_PublishesNormalizedEvents(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea).
		Return(nil, time.Time{}, nil)
	tm.openseaClient.EXPECT().GetAssets(gomock.Any(), testWallet).Return([]opensea.Asset{
		*testAsset(func(a *opensea.Asset) {
			a.ImageURL = types.StringPtr("https://cdn.example.com/1.png")
		}),
	}, nil)
	tm.openseaAdapter.EXPECT().
		Normalize(gomock.Any(), gomock.Any(), testWallet).
		Return(imageCollectible("42:::0xcontract"), nil)
	tm.openseaClient.EXPECT().GetEvents(gomock.Any(), testWallet, gomock.Any()).Return(nil, nil).Times(2)
	tm.store.EXPECT().
		ReplaceWalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea, gomock.Any()).
		Return(nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.publisher.EXPECT().
		PublishCollectibleNormalized(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.CollectibleEvent) error {
			assert.Equal(t, testWallet, event.Wallet)
			assert.Equal(t, domain.ProviderOpenSea, event.Provider)
			assert.Equal(t, "42:::0xcontract", event.Collectible.ID)
			assert.Equal(t, now, event.NormalizedAt)
			return nil
		})

	n := tm.newNormalizer(collectibles.Config{CacheTTL: 10 * time.Minute})

	result, err := n.WalletCollectibles(context.Background(), testWallet, domain.ProviderOpenSea)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestNormalizeAsset_Delegates(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	asset := testAsset(nil)
	expected := imageCollectible("42:::0xcontract")

	tm.openseaAdapter.EXPECT().Normalize(gomock.Any(), asset, testWallet).Return(expected, nil)

	n := tm.newBareNormalizer()

	c, err := n.NormalizeAsset(context.Background(), asset, testWallet)
	assert.NoError(t, err)
	assert.Equal(t, expected, c)
}

func TestNormalizeNFT_Delegates(t *testing.T) {
	tm := setupNormalizerMocks(t)
	defer tm.ctrl.Finish()

	nft := testNFT(nil)

	tm.metaplexAdapter.EXPECT().
		Normalize(gomock.Any(), nft, validSolanaWallet).
		Return(nil, collectibles.ErrNoResolvableMedia)

	n := tm.newBareNormalizer()

	_, err := n.NormalizeNFT(context.Background(), nft, validSolanaWallet)
	assert.ErrorIs(t, err, collectibles.ErrNoResolvableMedia)
}
