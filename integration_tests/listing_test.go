package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openmarket/markethub/lib/responses"
	"github.com/openmarket/markethub/lib/service"
)

type ListingTestSuite struct {
	TestSuite
	service  *service.MarketService
	backends testBackends
	token    string
}

func (suite *ListingTestSuite) SetupSuite() {
	svc, backends := marketTestServiceInit()
	suite.service = svc
	suite.backends = backends
	suite.echo = newTestEcho(svc)
	suite.token = accessTokenFor(svc, "alice")
}

func (suite *ListingTestSuite) TestCreateListing() {
	suite.backends.registry.SetOwned("asset-create", "alice", 10)

	listing := suite.createListingReq("asset-create", 25, 4, suite.token)
	assert.Equal(suite.T(), "asset-create", listing.AssetID)
	assert.Equal(suite.T(), "alice", listing.SellerID)
	assert.Equal(suite.T(), int64(25), listing.UnitPrice)
	assert.Equal(suite.T(), uint64(4), listing.Quantity)

	fetched := suite.getListingReq("asset-create", "alice")
	assert.Equal(suite.T(), uint64(4), fetched.Quantity)
	assert.Equal(suite.T(), int64(25), fetched.UnitPrice)
}

func (suite *ListingTestSuite) TestReplaceListing() {
	suite.backends.registry.SetOwned("asset-replace", "alice", 10)

	suite.createListingReq("asset-replace", 25, 4, suite.token)
	// a second offer for the same asset replaces the first outright
	suite.createListingReq("asset-replace", 7, 9, suite.token)

	fetched := suite.getListingReq("asset-replace", "alice")
	assert.Equal(suite.T(), uint64(9), fetched.Quantity)
	assert.Equal(suite.T(), int64(7), fetched.UnitPrice)
}

func (suite *ListingTestSuite) TestZeroQuantityRejected() {
	suite.backends.registry.SetOwned("asset-zero", "alice", 10)

	// quantity is a required field, the binding layer rejects a zero
	errResp := suite.createListingReqError("asset-zero", 25, 0, suite.token)
	assert.Equal(suite.T(), responses.BadArgumentsError.Code, errResp.Code)
}

func (suite *ListingTestSuite) TestListingMoreThanOwnedRejected() {
	suite.backends.registry.SetOwned("asset-overdraw", "alice", 3)

	errResp := suite.createListingReqError("asset-overdraw", 25, 4, suite.token)
	assert.Equal(suite.T(), responses.NotEnoughOwnedError.Code, errResp.Code)
	assert.Equal(suite.T(), responses.NotEnoughOwnedError.Message, errResp.Message)
}

func (suite *ListingTestSuite) TestUnlistedPairReadsAsZeroQuantity() {
	fetched := suite.getListingReq("asset-never-listed", "nobody")
	assert.Equal(suite.T(), uint64(0), fetched.Quantity)
	assert.Equal(suite.T(), int64(0), fetched.UnitPrice)
}

func (suite *ListingTestSuite) TestGetMyListings() {
	token := accessTokenFor(suite.service, "bob")
	suite.backends.registry.SetOwned("asset-mine-1", "bob", 10)
	suite.backends.registry.SetOwned("asset-mine-2", "bob", 10)

	suite.createListingReq("asset-mine-1", 5, 1, token)
	suite.createListingReq("asset-mine-2", 6, 2, token)

	mine := suite.getMyListingsReq(token)
	assert.Len(suite.T(), mine, 2)
	for _, listing := range mine {
		assert.Equal(suite.T(), "bob", listing.SellerID)
	}
}

func TestListingTestSuite(t *testing.T) {
	suite.Run(t, new(ListingTestSuite))
}
