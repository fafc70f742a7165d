package collectibles_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/soundvine/collectibles-indexer/internal/collectibles"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/media/sniffer"
	"github.com/soundvine/collectibles-indexer/internal/providers/metaplex"
	"github.com/soundvine/collectibles-indexer/internal/types"
)

const testSolanaWallet = "Wallet1111111111111111111111111111111111111"

func (tm *testAdapterMocks) newMetaplexAdapter() collectibles.MetaplexAdapter {
	return collectibles.NewMetaplexAdapter(tm.sniffer, tm.extractor, tm.resolver)
}

func bareFile(uri string) metaplex.File {
	return metaplex.File{URI: uri, Bare: true}
}

func typedFile(uri, fileType string) metaplex.File {
	return metaplex.File{URI: uri, Type: fileType}
}

func testNFT(mutate func(*metaplex.NFT)) *metaplex.NFT {
	nft := &metaplex.NFT{
		Symbol: "SONG",
		Name:   "First Pressing",
	}
	if mutate != nil {
		mutate(nft)
	}
	return nft
}

func TestMetaplexNormalize_GifFileEntry(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()
	tm.passthroughResolve()

	tm.extractor.EXPECT().
		ExtractFrame(gomock.Any(), "https://cdn.example.com/a.gif", "First Pressing").
		Return("http://localhost:8080/api/v1/frames/f1", nil)

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{typedFile("https://cdn.example.com/a.gif", "image/gif")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeGif, c.Type)
	assert.Equal(t, "https://cdn.example.com/a.gif", types.SafeString(c.GifURL))
	assert.Equal(t, "http://localhost:8080/api/v1/frames/f1", types.SafeString(c.FrameURL))
}

func TestMetaplexNormalize_GifFrameExtractionFailureKeepsGif(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()
	tm.passthroughResolve()

	tm.extractor.EXPECT().
		ExtractFrame(gomock.Any(), "https://cdn.example.com/a.gif", gomock.Any()).
		Return("", errors.New("503 service unavailable"))

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{typedFile("https://cdn.example.com/a.gif", "image/gif")}
	}), testSolanaWallet)

	// the gif classification survives without a poster frame
	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeGif, c.Type)
	assert.Nil(t, c.FrameURL)
}

func TestMetaplexNormalize_VideoCategorySingleFile(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Image = "https://cdn.example.com/poster.png"
		nft.Properties.Category = "video"
		nft.Properties.Files = []metaplex.File{bareFile("https://cdn.example.com/clip.mp4")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, c.Type)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", types.SafeString(c.VideoURL))
	assert.Equal(t, "https://cdn.example.com/poster.png", types.SafeString(c.FrameURL))
}

func TestMetaplexNormalize_VideoPositionalSecondFile(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	// two entries: thumbnail first, media second
	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Category = "video"
		nft.Properties.Files = []metaplex.File{
			bareFile("https://cdn.example.com/thumb.png"),
			bareFile("https://cdn.example.com/clip.mp4"),
		}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, c.Type)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", types.SafeString(c.VideoURL))
	assert.Nil(t, c.FrameURL)
}

func TestMetaplexNormalize_VideoAnimationURLWins(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.AnimationURL = types.StringPtr("https://cdn.example.com/anim.mp4")
		nft.Properties.Files = []metaplex.File{typedFile("https://cdn.example.com/clip.mp4", "video/mp4")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, c.Type)
	assert.Equal(t, "https://cdn.example.com/anim.mp4", types.SafeString(c.VideoURL))
}

func TestMetaplexNormalize_VideoStreamURL(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	streamURL := domain.VIDEO_STREAM_URL_PREFIX + "abc123/manifest/video.m3u8"

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{bareFile(streamURL)}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, c.Type)
	assert.Equal(t, streamURL, types.SafeString(c.VideoURL))
}

func TestMetaplexNormalize_ImageField(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Image = "https://cdn.example.com/a.png"
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeImage, c.Type)
	assert.Equal(t, "https://cdn.example.com/a.png", types.SafeString(c.ImageURL))
	assert.Equal(t, "https://cdn.example.com/a.png", types.SafeString(c.FrameURL))
	assert.Nil(t, c.VideoURL)
	assert.Nil(t, c.GifURL)
}

func TestMetaplexNormalize_ImageFileEntry(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{typedFile("https://cdn.example.com/a.png", "image/png")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeImage, c.Type)
	assert.Equal(t, "https://cdn.example.com/a.png", types.SafeString(c.ImageURL))
}

func TestMetaplexNormalize_ComputedMediaSniffGif(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()
	tm.passthroughResolve()

	tm.sniffer.EXPECT().
		Sniff(gomock.Any(), "https://cdn.example.com/blob").
		Return(sniffer.VerdictGif)
	tm.extractor.EXPECT().
		ExtractFrame(gomock.Any(), "https://cdn.example.com/blob", gomock.Any()).
		Return("http://localhost:8080/api/v1/frames/f2", nil)

	// a bare untyped file with no category, image or animation hints
	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{bareFile("https://cdn.example.com/blob")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeGif, c.Type)
	assert.Equal(t, "https://cdn.example.com/blob", types.SafeString(c.GifURL))
	assert.Equal(t, "http://localhost:8080/api/v1/frames/f2", types.SafeString(c.FrameURL))
}

func TestMetaplexNormalize_ComputedMediaSniffVideo(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()
	tm.passthroughResolve()

	tm.sniffer.EXPECT().
		Sniff(gomock.Any(), "https://cdn.example.com/blob").
		Return(sniffer.VerdictVideo)

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{bareFile("https://cdn.example.com/blob")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, c.Type)
	assert.Nil(t, c.FrameURL)
}

func TestMetaplexNormalize_ComputedMediaSniffInconclusive(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()
	tm.passthroughResolve()

	tm.sniffer.EXPECT().
		Sniff(gomock.Any(), "https://cdn.example.com/blob").
		Return(sniffer.VerdictInconclusive)

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Properties.Files = []metaplex.File{bareFile("https://cdn.example.com/blob")}
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeImage, c.Type)
	assert.Equal(t, "https://cdn.example.com/blob", types.SafeString(c.ImageURL))
}

func TestMetaplexNormalize_NoResolvableMedia(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(nil), testSolanaWallet)

	assert.ErrorIs(t, err, collectibles.ErrNoResolvableMedia)
	assert.Nil(t, c)
}

func TestMetaplexNormalize_DegradesToImageOnAnimationOnly(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	// animation URL alone matches the video resolver
	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.AnimationURL = types.StringPtr("https://cdn.example.com/anim.mp4")
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, c.Type)
	assert.Equal(t, "https://cdn.example.com/anim.mp4", types.SafeString(c.VideoURL))
}

func TestMetaplexNormalize_CompositeID(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Image = "https://cdn.example.com/a.png"
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, "SONG:::First Pressing:::https://cdn.example.com/a.png", c.ID)
	assert.Equal(t, c.ID, c.TokenID)
}

func TestMetaplexNormalize_CompositeIDDropsEmptyParts(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Symbol = ""
		nft.Image = "https://cdn.example.com/a.png"
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, "First Pressing:::https://cdn.example.com/a.png", c.ID)
}

func TestMetaplexNormalize_CreatorWalletNotOwned(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	nft := testNFT(func(nft *metaplex.NFT) {
		nft.Image = "https://cdn.example.com/a.png"
		nft.Properties.Creators = []metaplex.Creator{{Address: testSolanaWallet, Share: 100}}
	})

	a := tm.newMetaplexAdapter()

	c, err := a.Normalize(context.Background(), nft, testSolanaWallet)
	assert.NoError(t, err)
	assert.False(t, c.IsOwned)

	other, err := a.Normalize(context.Background(), nft, "OtherWallet111111111111111111111111111111111")
	assert.NoError(t, err)
	assert.True(t, other.IsOwned)
}

func TestMetaplexNormalize_BaseFields(t *testing.T) {
	tm := setupAdapterMocks(t)
	defer tm.ctrl.Finish()

	a := tm.newMetaplexAdapter()
	c, err := a.Normalize(context.Background(), testNFT(func(nft *metaplex.NFT) {
		nft.Image = "https://cdn.example.com/a.png"
		nft.Description = types.StringPtr("A drop")
		nft.ExternalURL = types.StringPtr("https://example.com/drop")
	}), testSolanaWallet)

	assert.NoError(t, err)
	assert.Equal(t, "First Pressing", types.SafeString(c.Name))
	assert.Equal(t, "A drop", types.SafeString(c.Description))
	assert.Equal(t, "https://example.com/drop", types.SafeString(c.ExternalLink))
	assert.Equal(t, domain.ProviderMetaplex, c.Provider)
	assert.Equal(t, testSolanaWallet, c.Wallet)
}
