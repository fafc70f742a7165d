package collectibles

import (
	"context"

	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/media/gifframe"
	"github.com/soundvine/collectibles-indexer/internal/media/sniffer"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/types"
	"github.com/soundvine/collectibles-indexer/internal/uri"
)

type metaplexAdapter struct {
	sniffer   sniffer.Sniffer
	extractor gifframe.Extractor
	resolver  uri.Resolver
}

// NewMetaplexAdapter creates the adapter normalizing Metaplex NFT records
func NewMetaplexAdapter(sniff sniffer.Sniffer, extractor gifframe.Extractor, resolver uri.Resolver) MetaplexAdapter {
	return &metaplexAdapter{
		sniffer:   sniff,
		extractor: extractor,
		resolver:  resolver,
	}
}

// Normalize maps a raw NFT record to a Collectible. Media resolution tries
// the gif, video, image and computed-media resolvers in order; the first one
// that produces a result wins.
func (a *metaplexAdapter) Normalize(ctx context.Context, nft *metaplex.NFT, wallet string) (*domain.Collectible, error) {
	collectible := a.baseCollectible(nft, wallet)

	resolvers := []func(context.Context, *metaplex.NFT) *domain.Media{
		a.resolveGif,
		a.resolveVideo,
		a.resolveImage,
		a.resolveComputedMedia,
	}

	for _, resolve := range resolvers {
		if media := resolve(ctx, nft); media != nil {
			collectible.ApplyMedia(*media)
			return collectible, nil
		}
	}

	// No resolver matched. Degrade to an image collectible with the first
	// available URL rather than failing the whole record.
	url := firstNFTURL(nft)
	if url == nil {
		return nil, ErrNoResolvableMedia
	}
	logger.WarnCtx(ctx, "nft matched no media resolver, degrading to image",
		zap.String("id", collectible.ID))
	collectible.ApplyMedia(domain.Media{Type: domain.MediaTypeImage, URL: *url, FrameURL: url})
	return collectible, nil
}

// baseCollectible fills the media-independent fields. Ownership flips to
// false when the requesting wallet is among the original creators: a creator
// listing is provenance, not current holding.
func (a *metaplexAdapter) baseCollectible(nft *metaplex.NFT, wallet string) *domain.Collectible {
	// Symbol, name and image are the only stable identifying fields the
	// metadata carries. Collisions are possible when two NFTs share all
	// three.
	id := domain.CompositeID(nft.Symbol, nft.Name, nft.Image)

	return &domain.Collectible{
		ID:           id,
		TokenID:      id,
		Name:         types.StringPtr(nft.Name),
		Description:  nft.Description,
		IsOwned:      !nft.HasCreator(wallet),
		ExternalLink: nft.ExternalURL,
		Provider:     domain.ProviderMetaplex,
		Wallet:       wallet,
	}
}

// resolveGif matches records with a declared image/gif file entry
func (a *metaplexAdapter) resolveGif(ctx context.Context, nft *metaplex.NFT) *domain.Media {
	gifFile := nft.Properties.FileWithType("image/gif")
	if gifFile == nil {
		return nil
	}

	media := domain.Media{Type: domain.MediaTypeGif, URL: gifFile.URI}
	frameURL, err := a.extractFrame(ctx, gifFile.URI, nft.Name)
	if err != nil {
		logger.WarnCtx(ctx, "gif frame extraction failed",
			zap.String("url", gifFile.URI),
			zap.Error(err))
	} else {
		media.FrameURL = &frameURL
	}
	return &media
}

// resolveVideo matches records that look like videos: a video category, an
// animation URL, a declared video file entry, or a bare streaming-service
// URL. The poster frame is the record's image field when present.
func (a *metaplexAdapter) resolveVideo(ctx context.Context, nft *metaplex.NFT) *domain.Media {
	videoFile := nft.Properties.FileWithTypeContaining("video")
	streamURL := nft.Properties.BareFileWithPrefix(domain.VIDEO_STREAM_URL_PREFIX)

	isVideo := nft.Properties.Category == "video" ||
		!types.StringNilOrEmpty(nft.AnimationURL) ||
		videoFile != nil ||
		streamURL != nil
	if !isVideo {
		return nil
	}

	var url *string
	switch {
	case !types.StringNilOrEmpty(nft.AnimationURL):
		url = nft.AnimationURL
	case videoFile != nil:
		url = &videoFile.URI
	case streamURL != nil:
		url = streamURL
	default:
		url = nft.Properties.PositionalFileURL()
	}
	if url == nil {
		return nil
	}

	var frameURL *string
	if nft.Image != "" {
		frameURL = types.StringPtr(nft.Image)
	}
	return &domain.Media{Type: domain.MediaTypeVideo, URL: *url, FrameURL: frameURL}
}

// resolveImage matches records with an image category, a non-empty image
// field, or a declared image file entry. The frame is the image itself.
func (a *metaplexAdapter) resolveImage(ctx context.Context, nft *metaplex.NFT) *domain.Media {
	imageFile := nft.Properties.FileWithTypeContaining("image")

	isImage := nft.Properties.Category == "image" ||
		nft.Image != "" ||
		imageFile != nil
	if !isImage {
		return nil
	}

	var url *string
	switch {
	case nft.Image != "":
		url = types.StringPtr(nft.Image)
	case imageFile != nil:
		url = &imageFile.URI
	default:
		url = nft.Properties.PositionalFileURL()
	}
	if url == nil {
		return nil
	}

	return &domain.Media{Type: domain.MediaTypeImage, URL: *url, FrameURL: url}
}

// resolveComputedMedia is the last resort: probe the first file entry's
// content type over the network and classify by the server's answer
func (a *metaplexAdapter) resolveComputedMedia(ctx context.Context, nft *metaplex.NFT) *domain.Media {
	if len(nft.Properties.Files) == 0 {
		return nil
	}

	url := nft.Properties.Files[0].URI
	if url == "" {
		return nil
	}

	switch a.sniffer.Sniff(ctx, resolveURL(ctx, a.resolver, url)) {
	case sniffer.VerdictGif:
		media := domain.Media{Type: domain.MediaTypeGif, URL: url}
		if frameURL, err := a.extractFrame(ctx, url, nft.Name); err == nil {
			media.FrameURL = &frameURL
		}
		return &media
	case sniffer.VerdictVideo:
		return &domain.Media{Type: domain.MediaTypeVideo, URL: url}
	default:
		return &domain.Media{Type: domain.MediaTypeImage, URL: url, FrameURL: &url}
	}
}

// extractFrame extracts a still poster frame from a GIF URL
func (a *metaplexAdapter) extractFrame(ctx context.Context, url string, name string) (string, error) {
	return a.extractor.ExtractFrame(ctx, resolveURL(ctx, a.resolver, url), name)
}

// firstNFTURL returns the first available URL on a record in
// image, animation, files order
func firstNFTURL(nft *metaplex.NFT) *string {
	candidates := []*string{types.StringPtr(nft.Image), nft.AnimationURL}
	candidates = append(candidates, nft.Properties.FileURLs()...)
	for _, url := range candidates {
		if !types.StringNilOrEmpty(url) {
			return url
		}
	}
	return nil
}
