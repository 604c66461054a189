package service

import "errors"

var (
	// ErrZeroAmount : listing with quantity 0.
	ErrZeroAmount = errors.New("listing quantity must be greater than zero")

	// ErrNotEnoughOwned : the seller does not hold what the call needs, at
	// listing time or at the purchase-time staleness re-check.
	ErrNotEnoughOwned = errors.New("seller does not hold enough of the asset")

	// ErrNotEnoughInSale : the buyer requested more than the listing offers.
	// An unlisted (asset, seller) pair behaves as a zero-quantity listing, so
	// purchases against it also end up here.
	ErrNotEnoughInSale = errors.New("requested quantity exceeds the quantity on sale")

	// ErrConversion : the requested quantity is not representable in the
	// money type used for the total price.
	ErrConversion = errors.New("requested quantity cannot be priced")
)
