package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/api/rest/dto"
	"github.com/soundvine/collectibles-indexer/internal/collectibles"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/framestore"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetWalletCollectibles returns the normalized collectibles of a wallet
	// GET /api/v1/wallets/:address/collectibles?provider=<opensea|metaplex>
	GetWalletCollectibles(c *gin.Context)

	// NormalizeCollectible normalizes a single submitted raw record
	// POST /api/v1/collectibles/normalize
	NormalizeCollectible(c *gin.Context)

	// GetFrame serves an extracted poster frame blob
	// GET /api/v1/frames/:id
	GetFrame(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	normalizer collectibles.Normalizer
	frames     framestore.Store
	clock      adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(normalizer collectibles.Normalizer, frames framestore.Store, clock adapter.Clock) Handler {
	return &handler{
		normalizer: normalizer,
		frames:     frames,
		clock:      clock,
	}
}

// GetWalletCollectibles returns the normalized collectibles of a wallet
func (h *handler) GetWalletCollectibles(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	provider := domain.Provider(c.DefaultQuery("provider", string(domain.ProviderOpenSea)))
	if !domain.IsValidProvider(provider) {
		respondValidationError(c, "provider must be one of: opensea, metaplex")
		return
	}

	result, err := h.normalizer.WalletCollectibles(c.Request.Context(), address, provider)
	if err != nil {
		switch {
		case errors.Is(err, collectibles.ErrInvalidWalletAddress):
			respondValidationError(c, "invalid wallet address for provider "+string(provider))
		case errors.Is(err, collectibles.ErrUnsupportedProvider):
			respondValidationError(c, "unsupported provider")
		default:
			respondUpstreamError(c, err, "Failed to fetch wallet collectibles",
				zap.String("wallet", address),
				zap.String("provider", string(provider)))
		}
		return
	}

	c.JSON(http.StatusOK, dto.CollectiblesResponse{
		Wallet:       address,
		Provider:     provider,
		Collectibles: result,
		Total:        len(result),
	})
}

// NormalizeCollectible normalizes a single submitted raw record
func (h *handler) NormalizeCollectible(c *gin.Context) {
	var req dto.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	var collectible *domain.Collectible
	var err error
	switch domain.Provider(req.Provider) {
	case domain.ProviderOpenSea:
		if req.Asset == nil {
			respondValidationError(c, "asset is required for provider opensea")
			return
		}
		collectible, err = h.normalizer.NormalizeAsset(c.Request.Context(), req.Asset, req.Wallet)
	case domain.ProviderMetaplex:
		if req.NFT == nil {
			respondValidationError(c, "nft is required for provider metaplex")
			return
		}
		collectible, err = h.normalizer.NormalizeNFT(c.Request.Context(), req.NFT, req.Wallet)
	default:
		respondValidationError(c, "provider must be one of: opensea, metaplex")
		return
	}

	if err != nil {
		if errors.Is(err, collectibles.ErrNoResolvableMedia) {
			respondValidationError(c, "record carries no resolvable media url")
			return
		}
		respondInternalError(c, err, "Failed to normalize record",
			zap.String("provider", req.Provider))
		return
	}

	c.JSON(http.StatusOK, dto.NormalizeResponse{Collectible: collectible})
}

// GetFrame serves an extracted poster frame blob
func (h *handler) GetFrame(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Frame ID is required")
		return
	}

	frame, ok := h.frames.Get(id)
	if !ok {
		respondNotFound(c, "Frame not found", id)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, frame.ContentType, frame.Data)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}
