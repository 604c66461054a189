// Package currency talks to the external currency ledger. Balances and
// transfer accounting belong to the ledger; this service only requests
// transfers and reads balances.
package currency

import (
	"context"
	"errors"
)

var (
	ErrInsufficientFunds = errors.New("currency: insufficient funds")

	// ErrBalanceTooLow is the keep-alive rejection: the transfer would push
	// the sender's balance below the ledger's minimum-retention threshold.
	ErrBalanceTooLow = errors.New("currency: balance would drop below the minimum retention threshold")
)

type Client interface {
	// Transfer moves amount from one account to the other. With keepAlive
	// set, the ledger rejects the transfer if the sender's resulting balance
	// would fall below its minimum-retention threshold.
	Transfer(ctx context.Context, from, to string, amount int64, keepAlive bool) error

	Balance(ctx context.Context, accountID string) (int64, error)
}
