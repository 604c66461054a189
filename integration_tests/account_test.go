package integration_tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openmarket/markethub/controllers"
	"github.com/openmarket/markethub/lib/service"
)

type AccountTestSuite struct {
	TestSuite
	service  *service.MarketService
	backends testBackends
	token    string
}

func (suite *AccountTestSuite) SetupSuite() {
	svc, backends := marketTestServiceInit()
	suite.service = svc
	suite.backends = backends
	suite.echo = newTestEcho(svc)
	suite.token = accessTokenFor(svc, "alice")
}

func (suite *AccountTestSuite) TestBalance() {
	suite.backends.ledger.SetBalance("alice", 1234)

	req := httptest.NewRequest(http.MethodGet, "/v2/balance", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", suite.token))
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	balanceResponse := &controllers.BalanceResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(balanceResponse))
	assert.Equal(suite.T(), int64(1234), balanceResponse.Balance)
}

func (suite *AccountTestSuite) TestHoldings() {
	suite.backends.registry.SetOwned("asset-held", "alice", 7)

	req := httptest.NewRequest(http.MethodGet, "/v2/holdings/asset-held", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", suite.token))
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	holdingsResponse := &controllers.HoldingsResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(holdingsResponse))
	assert.Equal(suite.T(), "asset-held", holdingsResponse.AssetID)
	assert.Equal(suite.T(), uint64(7), holdingsResponse.Quantity)
}

func (suite *AccountTestSuite) TestHoldingsOfUnknownAssetAreZero() {
	req := httptest.NewRequest(http.MethodGet, "/v2/holdings/asset-unknown", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", suite.token))
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	holdingsResponse := &controllers.HoldingsResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(holdingsResponse))
	assert.Equal(suite.T(), uint64(0), holdingsResponse.Quantity)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}
