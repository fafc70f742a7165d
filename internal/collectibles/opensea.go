package collectibles

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/media/classifier"
	"github.com/soundvine/collectibles-indexer/internal/media/gifframe"
	"github.com/soundvine/collectibles-indexer/internal/media/sniffer"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
	"github.com/soundvine/collectibles-indexer/internal/types"
	"github.com/soundvine/collectibles-indexer/internal/uri"
)

// IsValidAsset reports whether an asset record carries at least one URL some
// media predicate accepts. Records failing this guard are dropped before
// normalization.
func IsValidAsset(asset *opensea.Asset) bool {
	imageURLs := asset.ImageURLs()
	avURLs := avCandidateURLs(asset)
	return classifier.IsGif(imageURLs) ||
		classifier.IsVideo(avURLs) ||
		classifier.IsImage(imageURLs)
}

// avCandidateURLs returns the animation URLs followed by the image field
// URLs, the candidate order for video resolution
func avCandidateURLs(asset *opensea.Asset) []*string {
	return append([]*string{asset.AnimationURL, asset.AnimationOriginalURL}, asset.ImageURLs()...)
}

type openseaAdapter struct {
	sniffer   sniffer.Sniffer
	extractor gifframe.Extractor
	resolver  uri.Resolver
}

// NewOpenSeaAdapter creates the adapter normalizing OpenSea asset records
func NewOpenSeaAdapter(sniff sniffer.Sniffer, extractor gifframe.Extractor, resolver uri.Resolver) OpenSeaAdapter {
	return &openseaAdapter{
		sniffer:   sniff,
		extractor: extractor,
		resolver:  resolver,
	}
}

// Normalize maps a raw asset record to a Collectible
func (a *openseaAdapter) Normalize(ctx context.Context, asset *opensea.Asset, wallet string) (*domain.Collectible, error) {
	collectible := a.baseCollectible(asset, wallet)

	media, err := a.resolveMedia(ctx, asset)
	if err != nil {
		// Best-effort image shell using the first available URL. The
		// caller always gets a renderable record.
		logger.WarnCtx(ctx, "asset media resolution failed, degrading to image",
			zap.String("tokenID", asset.TokenID),
			zap.String("contract", asset.ContractAddress()),
			zap.Error(err))
		url := types.SafeString(classifier.FirstNonEmptyURL(asset.ImageURLs()))
		media = domain.Media{Type: domain.MediaTypeImage, URL: url, FrameURL: &url}
	}

	collectible.ApplyMedia(media)
	return collectible, nil
}

// baseCollectible fills the media-independent fields
func (a *openseaAdapter) baseCollectible(asset *opensea.Asset, wallet string) *domain.Collectible {
	var contractAddress *string
	if asset.AssetContract != nil {
		contractAddress = asset.AssetContract.Address
	}

	return &domain.Collectible{
		// The separator stays even when the contract address is missing,
		// keeping IDs prefix-parseable by token ID.
		ID:                   fmt.Sprintf("%s:::%s", asset.TokenID, asset.ContractAddress()),
		TokenID:              asset.TokenID,
		Name:                 asset.Name,
		Description:          asset.Description,
		IsOwned:              true,
		ExternalLink:         asset.ExternalLink,
		PermaLink:            asset.Permalink,
		AssetContractAddress: contractAddress,
		Provider:             domain.ProviderOpenSea,
		Wallet:               wallet,
	}
}

// resolveMedia runs the classification decision procedure: gif by extension,
// then video by extension with a sniff-checked poster frame, then the image
// default with sniff-based escalation to gif or video
func (a *openseaAdapter) resolveMedia(ctx context.Context, asset *opensea.Asset) (domain.Media, error) {
	imageURLs := asset.ImageURLs()

	if classifier.IsGif(imageURLs) {
		gifURL := types.SafeString(classifier.FirstGifURL(imageURLs))
		frameURL, err := a.extractFrame(ctx, gifURL, types.SafeString(asset.Name))
		if err != nil {
			return domain.Media{}, err
		}
		return domain.Media{Type: domain.MediaTypeGif, URL: gifURL, FrameURL: &frameURL}, nil
	}

	avURLs := avCandidateURLs(asset)
	if classifier.IsVideo(avURLs) {
		videoURL := types.SafeString(classifier.FirstVideoURL(avURLs))
		var frameURL *string
		if candidate := classifier.FirstNonVideoURL(imageURLs); candidate != nil {
			// Servers sometimes return a video at what looked like an
			// image URL. A poster that is itself a video is useless.
			if a.sniff(ctx, *candidate) != sniffer.VerdictVideo {
				frameURL = candidate
			}
		}
		return domain.Media{Type: domain.MediaTypeVideo, URL: videoURL, FrameURL: frameURL}, nil
	}

	candidate := classifier.FirstNonEmptyURL(imageURLs)
	if candidate == nil {
		return domain.Media{Type: domain.MediaTypeImage}, nil
	}

	url := *candidate
	switch a.sniff(ctx, url) {
	case sniffer.VerdictGif:
		frameURL, err := a.extractFrame(ctx, url, types.SafeString(asset.Name))
		if err != nil {
			return domain.Media{}, err
		}
		return domain.Media{Type: domain.MediaTypeGif, URL: url, FrameURL: &frameURL}, nil
	case sniffer.VerdictVideo:
		return domain.Media{Type: domain.MediaTypeVideo, URL: url, FrameURL: nil}, nil
	default:
		return domain.Media{Type: domain.MediaTypeImage, URL: url, FrameURL: &url}, nil
	}
}

// sniff probes a URL's actual content type, resolving gateway URIs first
func (a *openseaAdapter) sniff(ctx context.Context, url string) sniffer.Verdict {
	return a.sniffer.Sniff(ctx, resolveURL(ctx, a.resolver, url))
}

// extractFrame extracts a still poster frame from a GIF URL
func (a *openseaAdapter) extractFrame(ctx context.Context, url string, name string) (string, error) {
	return a.extractor.ExtractFrame(ctx, resolveURL(ctx, a.resolver, url), name)
}

// resolveURL maps ipfs:// and ar:// URIs to a working gateway URL. Resolution
// failure falls back to the original URL so classification can still proceed.
func resolveURL(ctx context.Context, resolver uri.Resolver, url string) string {
	resolved, err := resolver.Resolve(ctx, url)
	if err != nil {
		logger.DebugCtx(ctx, "uri resolution failed, using original url",
			zap.String("url", url),
			zap.Error(err))
		return url
	}
	return resolved
}
