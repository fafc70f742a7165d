package gifframe_test

import (
	"context"
	"errors"
	"image"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/media/gifframe"
	"github.com/soundvine/collectibles-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testExtractorMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	decoder    *mocks.MockGIFDecoder
	encoder    *mocks.MockImageEncoder
	frames     *mocks.MockFrameStore
}

func setupTestExtractor(t *testing.T, cfg gifframe.Config) (*testExtractorMocks, gifframe.Extractor) {
	ctrl := gomock.NewController(t)

	tm := &testExtractorMocks{
		ctrl:       ctrl,
		httpClient: mocks.NewMockHTTPClient(ctrl),
		decoder:    mocks.NewMockGIFDecoder(ctrl),
		encoder:    mocks.NewMockImageEncoder(ctrl),
		frames:     mocks.NewMockFrameStore(ctrl),
	}

	e := gifframe.New(tm.httpClient, tm.decoder, tm.encoder, tm.frames, cfg)
	return tm, e
}

func TestExtractFrame_PartialFetch(t *testing.T) {
	tm, e := setupTestExtractor(t, gifframe.Config{SupportsPartialFetch: true})
	defer tm.ctrl.Finish()

	gifData := []byte("GIF89a-partial-body")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	tm.httpClient.EXPECT().
		GetPartialContent(gomock.Any(), "https://cdn.example.com/a.gif", int64(200000)).
		Return(gifData, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(gifData).Return(img, nil)
	tm.encoder.EXPECT().EncodePNG(gomock.Any(), img).Return(nil)
	tm.frames.EXPECT().Put(gomock.Any(), "image/png").Return("http://localhost:8080/api/v1/frames/abc")

	frameURL, err := e.ExtractFrame(context.Background(), "https://cdn.example.com/a.gif", "Artwork")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/frames/abc", frameURL)
}

func TestExtractFrame_PartialDecodeFailureFallsBackToFull(t *testing.T) {
	tm, e := setupTestExtractor(t, gifframe.Config{SupportsPartialFetch: true})
	defer tm.ctrl.Finish()

	partialData := []byte("GIF89a-truncated")
	fullData := []byte("GIF89a-full-body")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	tm.httpClient.EXPECT().
		GetPartialContent(gomock.Any(), "https://cdn.example.com/a.gif", int64(200000)).
		Return(partialData, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(partialData).Return(nil, errors.New("unexpected EOF"))

	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://cdn.example.com/a.gif", nil).
		Return(fullData, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(fullData).Return(img, nil)
	tm.encoder.EXPECT().EncodePNG(gomock.Any(), img).Return(nil)
	tm.frames.EXPECT().Put(gomock.Any(), "image/png").Return("http://localhost:8080/api/v1/frames/def")

	frameURL, err := e.ExtractFrame(context.Background(), "https://cdn.example.com/a.gif", "Artwork")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/frames/def", frameURL)
}

func TestExtractFrame_PartialFetchDisabled(t *testing.T) {
	tm, e := setupTestExtractor(t, gifframe.Config{SupportsPartialFetch: false})
	defer tm.ctrl.Finish()

	fullData := []byte("GIF89a-full-body")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	// no GetPartialContent expectation, the ranged path must be skipped
	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://cdn.example.com/a.gif", nil).
		Return(fullData, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(fullData).Return(img, nil)
	tm.encoder.EXPECT().EncodePNG(gomock.Any(), img).Return(nil)
	tm.frames.EXPECT().Put(gomock.Any(), "image/png").Return("http://localhost:8080/api/v1/frames/ghi")

	frameURL, err := e.ExtractFrame(context.Background(), "https://cdn.example.com/a.gif", "Artwork")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/frames/ghi", frameURL)
}

func TestExtractFrame_FullFetchFailure(t *testing.T) {
	tm, e := setupTestExtractor(t, gifframe.Config{SupportsPartialFetch: false})
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://cdn.example.com/a.gif", nil).
		Return(nil, errors.New("503 service unavailable"))

	frameURL, err := e.ExtractFrame(context.Background(), "https://cdn.example.com/a.gif", "Artwork")
	assert.Error(t, err)
	assert.Empty(t, frameURL)
	assert.Contains(t, err.Error(), "Artwork")
}

func TestExtractFrame_DecodeFailureOnBothPaths(t *testing.T) {
	tm, e := setupTestExtractor(t, gifframe.Config{SupportsPartialFetch: true})
	defer tm.ctrl.Finish()

	corrupt := []byte("not-a-gif")

	tm.httpClient.EXPECT().
		GetPartialContent(gomock.Any(), "https://cdn.example.com/a.gif", int64(200000)).
		Return(corrupt, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(corrupt).Return(nil, errors.New("gif: can't recognize format"))

	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://cdn.example.com/a.gif", nil).
		Return(corrupt, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(corrupt).Return(nil, errors.New("gif: can't recognize format"))

	frameURL, err := e.ExtractFrame(context.Background(), "https://cdn.example.com/a.gif", "Artwork")
	assert.Error(t, err)
	assert.Empty(t, frameURL)
}

func TestExtractFrame_EncodeFailure(t *testing.T) {
	tm, e := setupTestExtractor(t, gifframe.Config{SupportsPartialFetch: false})
	defer tm.ctrl.Finish()

	fullData := []byte("GIF89a-full-body")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	tm.httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://cdn.example.com/a.gif", nil).
		Return(fullData, nil)
	tm.decoder.EXPECT().DecodeFirstFrame(fullData).Return(img, nil)
	tm.encoder.EXPECT().EncodePNG(gomock.Any(), img).Return(errors.New("png: invalid image"))

	_, err := e.ExtractFrame(context.Background(), "https://cdn.example.com/a.gif", "Artwork")
	assert.Error(t, err)
}
