// Package registry talks to the external asset-ownership registry. The
// registry owns all holdings accounting; this service only reads amounts and
// requests transfers.
package registry

import (
	"context"
	"errors"
)

var ErrNotEnoughHoldings = errors.New("registry: account does not hold enough of the asset")

type Client interface {
	// AmountOwned reports how many units of the asset the account currently
	// holds. Unknown assets and accounts report zero.
	AmountOwned(ctx context.Context, assetID, accountID string) (uint64, error)

	// Transfer moves quantity units of the asset between accounts. The
	// registry fails loudly when from does not hold enough.
	Transfer(ctx context.Context, assetID, from, to string, quantity uint64) error
}
