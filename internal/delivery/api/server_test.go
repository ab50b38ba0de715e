package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	apimiddleware "marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	server       *apiServer
	nftUC        *mockUsecase.MockNFTUsecase
	collectionUC *mockUsecase.MockCollectionUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	nftUC := mockUsecase.NewMockNFTUsecase(t)
	collectionUC := mockUsecase.NewMockCollectionUsecase(t)

	srv, err := NewServer(ServerParams{
		Lc:              fxtest.NewLifecycle(t),
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t), Logger: logger}),
			NFTHandler:        handler.NewNFTHandler(handler.NFTHandlerParams{NFTUC: nftUC, Logger: logger}),
			CollectionHandler: handler.NewCollectionHandler(handler.CollectionHandlerParams{CollectionUC: collectionUC, Logger: logger}),
		},
	})
	require.NoError(t, err)

	return serverFixtures{
		server:       srv.(*apiServer),
		nftUC:        nftUC,
		collectionUC: collectionUC,
	}
}

func (fx serverFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	fx.server.server.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_StaticNFTRoutesWinOverTokenID(t *testing.T) {
	fx := createTestServer(t)

	fx.nftUC.EXPECT().FetchMultiple(mock.Anything, "1-2").Return([]*entity.NFT{{TokenID: 1}, {TokenID: 2}}, nil)

	rec := fx.do(http.MethodGet, "/nfts/multiple/1-2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestServer_ListCollections(t *testing.T) {
	fx := createTestServer(t)

	fx.collectionUC.EXPECT().ListAll(mock.Anything).Return([]*entity.Collection{{ID: 1, Name: "apes"}}, nil)

	rec := fx.do(http.MethodGet, "/collections", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"apes"`)
}

func TestServer_BodyLimit(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/nfts", `{"name":"`+strings.Repeat("a", 2048)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/reviews", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HTTP_ERROR", body["code"])
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body["requestId"])
}
