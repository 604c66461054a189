package service

import (
	"time"

	"github.com/openmarket/markethub/common"
	"github.com/openmarket/markethub/db/models"
)

// Event is the notification shape pushed to the pubsub and from there to the
// webhook poster and the RabbitMQ publisher.
type Event struct {
	Type      string    `json:"type"`
	AssetID   string    `json:"asset_id"`
	SellerID  string    `json:"seller_id"`
	BuyerID   string    `json:"buyer_id,omitempty"`
	UnitPrice int64     `json:"unit_price,omitempty"`
	Quantity  uint64    `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (svc *MarketService) publishListed(listing *models.Listing) {
	svc.EventPubSub.Publish(common.EventTypeListed, Event{
		Type:      common.EventTypeListed,
		AssetID:   listing.AssetID,
		SellerID:  listing.SellerID,
		UnitPrice: listing.UnitPrice,
		Quantity:  listing.Quantity,
		CreatedAt: time.Now(),
	})
}

func (svc *MarketService) publishSold(assetID, sellerID, buyerID string, quantity uint64) {
	svc.EventPubSub.Publish(common.EventTypeSold, Event{
		Type:      common.EventTypeSold,
		AssetID:   assetID,
		SellerID:  sellerID,
		BuyerID:   buyerID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	})
}

// SubscribeListedSoldEvents is handed to the RabbitMQ publisher so it can
// drain every notification this service emits.
func (svc *MarketService) SubscribeListedSoldEvents() (chan Event, error) {
	events := make(chan Event)
	if _, err := svc.EventPubSub.Subscribe(common.EventTypeListed, events); err != nil {
		return nil, err
	}
	if _, err := svc.EventPubSub.Subscribe(common.EventTypeSold, events); err != nil {
		return nil, err
	}
	return events, nil
}
