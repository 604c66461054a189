package service

import (
	"context"
	"math"

	"github.com/getsentry/sentry-go"

	"github.com/openmarket/markethub/db/models"
)

// PurchaseResult summarizes a settled purchase.
type PurchaseResult struct {
	Listing   models.Listing // state after the fill; zero quantity means the listing is gone
	TotalPaid int64
	Quantity  uint64
	FullFill  bool
}

// Purchase buys quantity units from the seller's listing of the asset.
//
// The sequence is validate-then-apply: every check that needs no side effect
// runs first, then the currency transfer, then the asset transfer, then the
// ledger write. If any step fails after the currency moved, the transfers
// applied so far are reversed before returning, so a failed call leaves no
// effect behind.
func (svc *MarketService) Purchase(ctx context.Context, buyerID, assetID, sellerID string, quantity uint64) (*PurchaseResult, error) {
	record, err := svc.Listings.Get(ctx, assetID, sellerID)
	if err != nil {
		return nil, err
	}
	owned, err := svc.Registry.AmountOwned(ctx, assetID, sellerID)
	if err != nil {
		return nil, err
	}

	// an unlisted pair reads as a zero-quantity record, so it fails here
	if quantity > record.Quantity {
		return nil, ErrNotEnoughInSale
	}
	// staleness check: the seller's holdings may have shrunk since listing
	if record.Quantity > owned {
		return nil, ErrNotEnoughOwned
	}

	total, err := totalPrice(record.UnitPrice, quantity)
	if err != nil {
		return nil, err
	}

	// keep-alive: the ledger rejects the payment if it would leave the buyer
	// below its minimum-retention threshold; ledger errors pass through as-is
	if err = svc.Currency.Transfer(ctx, buyerID, sellerID, total, true); err != nil {
		return nil, err
	}

	if err = svc.Registry.Transfer(ctx, assetID, sellerID, buyerID, quantity); err != nil {
		svc.refund(ctx, sellerID, buyerID, total)
		return nil, err
	}

	fullFill := quantity == record.Quantity
	if fullFill {
		err = svc.Listings.Remove(ctx, assetID, sellerID)
	} else {
		err = svc.Listings.DecrementQuantity(ctx, assetID, sellerID, quantity)
	}
	if err != nil {
		// both transfers settled already; unwind them so the failed call
		// leaves no effect behind
		svc.Logger.Errorf("Failed to update listing after settlement, reversing transfers asset_id:%s seller_id:%s error: %v", assetID, sellerID, err)
		sentry.CaptureException(err)
		if revErr := svc.Registry.Transfer(ctx, assetID, buyerID, sellerID, quantity); revErr != nil {
			svc.Logger.Errorf("Failed to return asset to seller asset_id:%s seller_id:%s quantity:%d error: %v", assetID, sellerID, quantity, revErr)
			sentry.CaptureException(revErr)
		}
		svc.refund(ctx, sellerID, buyerID, total)
		return nil, err
	}

	svc.publishSold(assetID, sellerID, buyerID, quantity)

	record.Quantity -= quantity
	return &PurchaseResult{
		Listing:   record,
		TotalPaid: total,
		Quantity:  quantity,
		FullFill:  fullFill,
	}, nil
}

// refund is the compensating transfer for a payment whose asset leg failed.
// Keep-alive is off: a refund must never be blocked by the seller's
// retention threshold.
func (svc *MarketService) refund(ctx context.Context, sellerID, buyerID string, total int64) {
	if err := svc.Currency.Transfer(ctx, sellerID, buyerID, total, false); err != nil {
		svc.Logger.Errorf("Failed to refund buyer after asset transfer failure buyer_id:%s seller_id:%s amount:%d error: %v", buyerID, sellerID, total, err)
		sentry.CaptureException(err)
	}
}

// totalPrice is unitPrice * quantity, saturating at the maximum the money
// type can hold. Quantities that do not fit the money type at all are a
// conversion failure.
func totalPrice(unitPrice int64, quantity uint64) (int64, error) {
	if quantity > math.MaxInt64 {
		return 0, ErrConversion
	}
	amount := int64(quantity)
	if amount == 0 || unitPrice == 0 {
		return 0, nil
	}
	if unitPrice > math.MaxInt64/amount {
		return math.MaxInt64, nil
	}
	return unitPrice * amount, nil
}
