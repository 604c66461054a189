package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Listing : Listing Model
//
// A listing is a seller's standing offer of a quantity of an asset at a
// unit price. One row per (asset_id, seller_id); a new listing for the same
// pair replaces the old one in full.
type Listing struct {
	ID        int64        `bun:",pk,autoincrement" json:"-"`
	AssetID   string       `bun:",notnull,unique:listings_asset_id_seller_id" json:"asset_id"`
	SellerID  string       `bun:",notnull,unique:listings_asset_id_seller_id" json:"seller_id"`
	UnitPrice int64        `bun:",notnull" json:"unit_price"`
	Quantity  uint64       `bun:",notnull" json:"quantity"`
	CreatedAt time.Time    `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt bun.NullTime `json:"-"`
}
