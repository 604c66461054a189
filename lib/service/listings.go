package service

import (
	"context"

	"github.com/openmarket/markethub/db/models"
)

// List publishes a seller's intent to sell quantity units of an asset at
// unitPrice each. It moves no funds and no assets: it only validates the
// seller's holdings once, writes the listing and emits a "listed" event.
// A prior listing for the same (asset, seller) pair is replaced in full.
func (svc *MarketService) List(ctx context.Context, sellerID, assetID string, unitPrice int64, quantity uint64) (*models.Listing, error) {
	if quantity == 0 {
		return nil, ErrZeroAmount
	}

	owned, err := svc.Registry.AmountOwned(ctx, assetID, sellerID)
	if err != nil {
		return nil, err
	}
	// checked once, here; holdings can still decrease later, which the
	// purchase path re-checks
	if owned < quantity {
		return nil, ErrNotEnoughOwned
	}

	listing := &models.Listing{
		AssetID:   assetID,
		SellerID:  sellerID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
	if err = svc.Listings.Put(ctx, listing); err != nil {
		return nil, err
	}

	svc.publishListed(listing)
	return listing, nil
}

// FindListing returns the stored record for the pair. A missing pair comes
// back as a zero-quantity record, not an error.
func (svc *MarketService) FindListing(ctx context.Context, assetID, sellerID string) (models.Listing, error) {
	return svc.Listings.Get(ctx, assetID, sellerID)
}

func (svc *MarketService) ListingsForAsset(ctx context.Context, assetID string) ([]models.Listing, error) {
	return svc.Listings.ForAsset(ctx, assetID)
}

func (svc *MarketService) ListingsForSeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	return svc.Listings.ForSeller(ctx, sellerID)
}
