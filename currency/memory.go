package currency

import (
	"context"
	"sync"
)

// InMemory is a Client backed by a map, used in tests and for running the
// service without a real ledger. ExistentialDeposit is the minimum balance a
// keep-alive transfer must leave behind on the sender's account.
type InMemory struct {
	mu                 sync.RWMutex
	balances           map[string]int64
	ExistentialDeposit int64
}

func NewInMemory(existentialDeposit int64) *InMemory {
	return &InMemory{
		balances:           make(map[string]int64),
		ExistentialDeposit: existentialDeposit,
	}
}

// SetBalance overwrites an account balance, bypassing transfer rules.
func (l *InMemory) SetBalance(accountID string, balance int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[accountID] = balance
}

func (l *InMemory) Transfer(ctx context.Context, from, to string, amount int64, keepAlive bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from] < amount {
		return ErrInsufficientFunds
	}
	if keepAlive && l.balances[from]-amount < l.ExistentialDeposit {
		return ErrBalanceTooLow
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

func (l *InMemory) Balance(ctx context.Context, accountID string) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[accountID], nil
}
