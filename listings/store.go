package listings

import (
	"context"

	"github.com/openmarket/markethub/db/models"
)

// Store is the listing ledger: the only place listing state lives.
//
// Get on a key without a listing returns the zero-value record (unit price 0,
// quantity 0) and no error. A zero-quantity listing and no listing are
// indistinguishable through this interface, and callers rely on that: a
// purchase against an unlisted seller fails its quantity check instead of a
// lookup check.
type Store interface {
	Get(ctx context.Context, assetID, sellerID string) (models.Listing, error)

	// Put fully replaces any existing listing for (assetID, sellerID).
	Put(ctx context.Context, listing *models.Listing) error

	// Remove deletes the listing for the key. Removing a missing key is a no-op.
	Remove(ctx context.Context, assetID, sellerID string) error

	// DecrementQuantity reduces the stored quantity by delta. Callers must
	// have checked delta against the stored quantity first; the result of
	// decrementing past zero is undefined.
	DecrementQuantity(ctx context.Context, assetID, sellerID string, delta uint64) error

	ForAsset(ctx context.Context, assetID string) ([]models.Listing, error)
	ForSeller(ctx context.Context, sellerID string) ([]models.Listing, error)
}
