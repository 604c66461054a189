package registry

import (
	"context"
	"sync"
)

// InMemory is a Client backed by a map, used in tests and for running the
// service without a real registry.
type InMemory struct {
	mu       sync.RWMutex
	holdings map[string]map[string]uint64 // assetID -> accountID -> quantity
}

func NewInMemory() *InMemory {
	return &InMemory{holdings: make(map[string]map[string]uint64)}
}

// SetOwned overwrites the amount an account holds, bypassing transfer rules.
func (r *InMemory) SetOwned(assetID, accountID string, quantity uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.holdings[assetID] == nil {
		r.holdings[assetID] = make(map[string]uint64)
	}
	r.holdings[assetID][accountID] = quantity
}

func (r *InMemory) AmountOwned(ctx context.Context, assetID, accountID string) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.holdings[assetID][accountID], nil
}

func (r *InMemory) Transfer(ctx context.Context, assetID, from, to string, quantity uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.holdings[assetID][from] < quantity {
		return ErrNotEnoughHoldings
	}
	if r.holdings[assetID] == nil {
		r.holdings[assetID] = make(map[string]uint64)
	}
	r.holdings[assetID][from] -= quantity
	r.holdings[assetID][to] += quantity
	return nil
}
