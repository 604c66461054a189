package integration_tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openmarket/markethub/lib/responses"
	"github.com/openmarket/markethub/lib/service"
	"github.com/openmarket/markethub/lib/tokens"
)

type AuthTestSuite struct {
	TestSuite
	service *service.MarketService
}

func (suite *AuthTestSuite) SetupSuite() {
	svc, _ := marketTestServiceInit()
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *AuthTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/v2/listings", nil)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	errorResponse := &responses.ErrorResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	assert.Equal(suite.T(), responses.BadAuthError.Code, errorResponse.Code)
}

func (suite *AuthTestSuite) TestTokenSignedWithWrongSecret() {
	forged, err := tokens.GenerateAccessToken([]byte("WRONG"), 3600, "mallory")
	assert.NoError(suite.T(), err)
	req := httptest.NewRequest(http.MethodGet, "/v2/listings", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", forged))
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *AuthTestSuite) TestExpiredToken() {
	expired, err := tokens.GenerateAccessToken(suite.service.Config.JWTSecret, -3600, "alice")
	assert.NoError(suite.T(), err)
	req := httptest.NewRequest(http.MethodGet, "/v2/listings", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", expired))
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *AuthTestSuite) TestValidToken() {
	token := accessTokenFor(suite.service, "alice")
	req := httptest.NewRequest(http.MethodGet, "/v2/listings", nil)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *AuthTestSuite) TestPublicEndpointsNeedNoToken() {
	req := httptest.NewRequest(http.MethodGet, "/v2/listings/asset-public/alice", nil)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
