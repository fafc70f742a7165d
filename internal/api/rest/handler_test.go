package rest_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/soundvine/collectibles-indexer/internal/api/rest"
	"github.com/soundvine/collectibles-indexer/internal/collectibles"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/framestore"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

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

const testWallet = "0x1111111111111111111111111111111111111111"

type testHandlerMocks struct {
	ctrl       *gomock.Controller
	normalizer *mocks.MockNormalizer
	frames     *mocks.MockFrameStore
	clock      *mocks.MockClock
	handler    rest.Handler
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:       ctrl,
		normalizer: mocks.NewMockNormalizer(ctrl),
		frames:     mocks.NewMockFrameStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tm.handler = rest.NewHandler(tm.normalizer, tm.frames, tm.clock)
	return tm
}

func performRequest(handler gin.HandlerFunc, method, path string, params gin.Params, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	handler(c)
	return w
}

func TestGetWalletCollectibles(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	result := []domain.Collectible{{ID: "42:::0xcontract", Type: domain.MediaTypeImage}}
	tm.normalizer.EXPECT().
		WalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea).
		Return(result, nil)

	w := performRequest(tm.handler.GetWalletCollectibles, http.MethodGet,
		"/api/v1/wallets/"+testWallet+"/collectibles",
		gin.Params{{Key: "address", Value: testWallet}}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"42:::0xcontract"`)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestGetWalletCollectibles_ExplicitProvider(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.normalizer.EXPECT().
		WalletCollectibles(gomock.Any(), "SolWallet", domain.ProviderMetaplex).
		Return([]domain.Collectible{}, nil)

	w := performRequest(tm.handler.GetWalletCollectibles, http.MethodGet,
		"/api/v1/wallets/SolWallet/collectibles?provider=metaplex",
		gin.Params{{Key: "address", Value: "SolWallet"}}, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetWalletCollectibles_UnknownProvider(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	w := performRequest(tm.handler.GetWalletCollectibles, http.MethodGet,
		"/api/v1/wallets/"+testWallet+"/collectibles?provider=rarible",
		gin.Params{{Key: "address", Value: testWallet}}, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetWalletCollectibles_InvalidWallet(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.normalizer.EXPECT().
		WalletCollectibles(gomock.Any(), "bogus", domain.ProviderOpenSea).
		Return(nil, collectibles.ErrInvalidWalletAddress)

	w := performRequest(tm.handler.GetWalletCollectibles, http.MethodGet,
		"/api/v1/wallets/bogus/collectibles",
		gin.Params{{Key: "address", Value: "bogus"}}, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetWalletCollectibles_UpstreamFailure(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.normalizer.EXPECT().
		WalletCollectibles(gomock.Any(), testWallet, domain.ProviderOpenSea).
		Return(nil, errors.New("429 too many requests"))

	w := performRequest(tm.handler.GetWalletCollectibles, http.MethodGet,
		"/api/v1/wallets/"+testWallet+"/collectibles",
		gin.Params{{Key: "address", Value: testWallet}}, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestNormalizeCollectible_OpenSea(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.normalizer.EXPECT().
		NormalizeAsset(gomock.Any(), gomock.Any(), testWallet).
		Return(&domain.Collectible{ID: "42:::0xcontract"}, nil)

	body := `{"wallet":"` + testWallet + `","provider":"opensea","asset":{"token_id":"42"}}`
	w := performRequest(tm.handler.NormalizeCollectible, http.MethodPost,
		"/api/v1/collectibles/normalize", nil, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"42:::0xcontract"`)
}

func TestNormalizeCollectible_Metaplex(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.normalizer.EXPECT().
		NormalizeNFT(gomock.Any(), gomock.Any(), "SolWallet").
		Return(&domain.Collectible{ID: "SONG:::Track"}, nil)

	body := `{"wallet":"SolWallet","provider":"metaplex","nft":{"symbol":"SONG","name":"Track"}}`
	w := performRequest(tm.handler.NormalizeCollectible, http.MethodPost,
		"/api/v1/collectibles/normalize", nil, body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNormalizeCollectible_MissingRecordForProvider(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	body := `{"wallet":"` + testWallet + `","provider":"opensea"}`
	w := performRequest(tm.handler.NormalizeCollectible, http.MethodPost,
		"/api/v1/collectibles/normalize", nil, body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestNormalizeCollectible_MissingRequiredFields(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	w := performRequest(tm.handler.NormalizeCollectible, http.MethodPost,
		"/api/v1/collectibles/normalize", nil, `{"provider":"opensea"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNormalizeCollectible_NoResolvableMedia(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.normalizer.EXPECT().
		NormalizeNFT(gomock.Any(), gomock.Any(), "SolWallet").
		Return(nil, collectibles.ErrNoResolvableMedia)

	body := `{"wallet":"SolWallet","provider":"metaplex","nft":{"symbol":"SONG","name":"Track"}}`
	w := performRequest(tm.handler.NormalizeCollectible, http.MethodPost,
		"/api/v1/collectibles/normalize", nil, body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetFrame(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.frames.EXPECT().Get("01HX0000000000000000000000").Return(&framestore.Frame{
		ID:          "01HX0000000000000000000000",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}, true)

	w := performRequest(tm.handler.GetFrame, http.MethodGet,
		"/api/v1/frames/01HX0000000000000000000000",
		gin.Params{{Key: "id", Value: "01HX0000000000000000000000"}}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, w.Body.Bytes())
}

func TestGetFrame_NotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.frames.EXPECT().Get("missing").Return(nil, false)

	w := performRequest(tm.handler.GetFrame, http.MethodGet,
		"/api/v1/frames/missing",
		gin.Params{{Key: "id", Value: "missing"}}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	w := performRequest(tm.handler.HealthCheck, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
