package integration_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openmarket/markethub/controllers"
	"github.com/openmarket/markethub/currency"
	"github.com/openmarket/markethub/lib/logging"
	"github.com/openmarket/markethub/lib/responses"
	"github.com/openmarket/markethub/lib/service"
	"github.com/openmarket/markethub/lib/tokens"
	"github.com/openmarket/markethub/lib/transport"
	"github.com/openmarket/markethub/listings"
	"github.com/openmarket/markethub/registry"
)

const testExistentialDeposit = 10

type testBackends struct {
	store    *listings.InMemory
	registry *registry.InMemory
	ledger   *currency.InMemory
}

func marketTestServiceInit() (*service.MarketService, testBackends) {
	c := &service.Config{
		JWTSecret:            []byte("SECRET"),
		JWTAccessTokenExpiry: 3600,
		DefaultRateLimit:     100,
		StrictRateLimit:      100,
		BurstRateLimit:       100,
	}

	backends := testBackends{
		store:    listings.NewInMemory(),
		registry: registry.NewInMemory(),
		ledger:   currency.NewInMemory(testExistentialDeposit),
	}

	svc := &service.MarketService{
		Config:      c,
		Listings:    backends.store,
		Registry:    backends.registry,
		Currency:    backends.ledger,
		Logger:      logging.Logger(""),
		EventPubSub: service.NewPubsub(),
	}
	return svc, backends
}

// wires the full echo app the way cmd/server does, minus the external
// processes, so requests exercise the real middleware chain
func newTestEcho(svc *service.MarketService) *echo.Echo {
	e := transport.InitEcho(svc.Config, svc.Logger)
	logMw := transport.CreateLoggingMiddleware(svc.Logger)
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(svc.Config.StrictRateLimit, svc.Config.BurstRateLimit)
	secured := e.Group("", tokens.Middleware(svc.Config.JWTSecret), logMw)
	securedWithStrictRateLimit := e.Group("", tokens.Middleware(svc.Config.JWTSecret), strictRateLimitMiddleware, logMw)
	transport.RegisterEndpoints(svc, e, secured, securedWithStrictRateLimit, logMw)
	return e
}

func accessTokenFor(svc *service.MarketService, accountID string) string {
	token, err := tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, accountID)
	if err != nil {
		log.Fatalf("Error minting test token: %v", err)
	}
	return token
}

type TestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func checkErrResponse(suite *TestSuite, rec *httptest.ResponseRecorder) *responses.ErrorResponse {
	errorResponse := &responses.ErrorResponse{}
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	return errorResponse
}

func (suite *TestSuite) createListingReq(assetID string, unitPrice int64, quantity uint64, token string) *controllers.ListingResponse {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(&controllers.PutListingRequestBody{
		AssetID:   assetID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}))
	req := httptest.NewRequest(http.MethodPost, "/v2/listings", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	suite.echo.ServeHTTP(rec, req)
	listingResponse := &controllers.ListingResponse{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(listingResponse))
	return listingResponse
}

func (suite *TestSuite) createListingReqError(assetID string, unitPrice int64, quantity uint64, token string) *responses.ErrorResponse {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(&controllers.PutListingRequestBody{
		AssetID:   assetID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}))
	req := httptest.NewRequest(http.MethodPost, "/v2/listings", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	suite.echo.ServeHTTP(rec, req)
	return checkErrResponse(suite, rec)
}

func (suite *TestSuite) createPurchaseReq(assetID, sellerID string, quantity uint64, token string) *controllers.PurchaseResponseBody {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(&controllers.PurchaseRequestBody{
		AssetID:  assetID,
		SellerID: sellerID,
		Quantity: quantity,
	}))
	req := httptest.NewRequest(http.MethodPost, "/v2/purchases", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	suite.echo.ServeHTTP(rec, req)
	purchaseResponse := &controllers.PurchaseResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(purchaseResponse))
	return purchaseResponse
}

func (suite *TestSuite) createPurchaseReqError(assetID, sellerID string, quantity uint64, token string) *responses.ErrorResponse {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(&controllers.PurchaseRequestBody{
		AssetID:  assetID,
		SellerID: sellerID,
		Quantity: quantity,
	}))
	req := httptest.NewRequest(http.MethodPost, "/v2/purchases", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	suite.echo.ServeHTTP(rec, req)
	return checkErrResponse(suite, rec)
}

func (suite *TestSuite) getListingReq(assetID, sellerID string) *controllers.ListingResponse {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v2/listings/%s/%s", assetID, sellerID), nil)
	suite.echo.ServeHTTP(rec, req)
	listingResponse := &controllers.ListingResponse{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(listingResponse))
	return listingResponse
}

func (suite *TestSuite) getMyListingsReq(token string) []controllers.ListingResponse {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v2/listings", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	suite.echo.ServeHTTP(rec, req)
	listingsResponse := []controllers.ListingResponse{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&listingsResponse))
	return listingsResponse
}
