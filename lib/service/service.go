package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"

	"github.com/openmarket/markethub/currency"
	"github.com/openmarket/markethub/listings"
	"github.com/openmarket/markethub/registry"
)

// MarketService owns the listing ledger and drives the external ownership
// registry and currency ledger to realize trades.
type MarketService struct {
	Config      *Config
	DB          *bun.DB
	Listings    listings.Store
	Registry    registry.Client
	Currency    currency.Client
	Logger      *lecho.Logger
	EventPubSub *Pubsub
}
