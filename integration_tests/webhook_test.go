package integration_tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openmarket/markethub/common"
	"github.com/openmarket/markethub/lib/service"
)

type WebhookTestSuite struct {
	TestSuite
	service      *service.MarketService
	backends     testBackends
	received     chan service.Event
	webhook      *httptest.Server
	cancelPoster context.CancelFunc
}

func (suite *WebhookTestSuite) SetupSuite() {
	svc, backends := marketTestServiceInit()
	suite.service = svc
	suite.backends = backends
	suite.echo = newTestEcho(svc)

	suite.received = make(chan service.Event, 8)
	suite.webhook = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event := service.Event{}
		assert.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&event))
		suite.received <- event
		w.WriteHeader(http.StatusOK)
	}))

	// subscribe before serving any request so the first listed event
	// cannot slip past the poster
	events, err := svc.SubscribeListedSoldEvents()
	if err != nil {
		suite.T().Fatalf("Error subscribing webhook events: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	suite.cancelPoster = cancel
	go svc.StartWebhookSubscription(ctx, suite.webhook.URL, events)
}

func (suite *WebhookTestSuite) TearDownSuite() {
	suite.cancelPoster()
	suite.webhook.Close()
}

func (suite *WebhookTestSuite) expectEvent() service.Event {
	select {
	case event := <-suite.received:
		return event
	case <-time.After(5 * time.Second):
		suite.T().Fatal("timed out waiting for webhook delivery")
		return service.Event{}
	}
}

func (suite *WebhookTestSuite) TestListedAndSoldWebhooks() {
	sellerToken := accessTokenFor(suite.service, "seller")
	buyerToken := accessTokenFor(suite.service, "buyer")
	suite.backends.registry.SetOwned("asset-hook", "seller", 5)
	suite.backends.ledger.SetBalance("buyer", 100)

	suite.createListingReq("asset-hook", 10, 5, sellerToken)
	listed := suite.expectEvent()
	assert.Equal(suite.T(), common.EventTypeListed, listed.Type)
	assert.Equal(suite.T(), "asset-hook", listed.AssetID)
	assert.Equal(suite.T(), "seller", listed.SellerID)
	assert.Equal(suite.T(), uint64(5), listed.Quantity)
	assert.Equal(suite.T(), int64(10), listed.UnitPrice)

	suite.createPurchaseReq("asset-hook", "seller", 2, buyerToken)
	sold := suite.expectEvent()
	assert.Equal(suite.T(), common.EventTypeSold, sold.Type)
	assert.Equal(suite.T(), "asset-hook", sold.AssetID)
	assert.Equal(suite.T(), "buyer", sold.BuyerID)
	assert.Equal(suite.T(), uint64(2), sold.Quantity)
}

func TestWebhookTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}
