package listings

import (
	"context"
	"sync"
	"time"

	"github.com/openmarket/markethub/db/models"
)

type listingKey struct {
	assetID  string
	sellerID string
}

// InMemory is a mutex-guarded map implementation of Store, used in tests and
// for running the service without Postgres.
type InMemory struct {
	mu       sync.RWMutex
	records  map[listingKey]models.Listing
	sequence int64
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[listingKey]models.Listing)}
}

func (store *InMemory) Get(ctx context.Context, assetID, sellerID string) (models.Listing, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	listing, ok := store.records[listingKey{assetID, sellerID}]
	if !ok {
		return models.Listing{AssetID: assetID, SellerID: sellerID}, nil
	}
	return listing, nil
}

func (store *InMemory) Put(ctx context.Context, listing *models.Listing) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	key := listingKey{listing.AssetID, listing.SellerID}
	if existing, ok := store.records[key]; ok {
		listing.ID = existing.ID
		listing.CreatedAt = existing.CreatedAt
	} else {
		store.sequence++
		listing.ID = store.sequence
		listing.CreatedAt = time.Now()
	}
	store.records[key] = *listing
	return nil
}

func (store *InMemory) Remove(ctx context.Context, assetID, sellerID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.records, listingKey{assetID, sellerID})
	return nil
}

func (store *InMemory) DecrementQuantity(ctx context.Context, assetID, sellerID string, delta uint64) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	key := listingKey{assetID, sellerID}
	listing, ok := store.records[key]
	if !ok {
		return nil
	}
	listing.Quantity -= delta
	store.records[key] = listing
	return nil
}

func (store *InMemory) ForAsset(ctx context.Context, assetID string) ([]models.Listing, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	result := []models.Listing{}
	for key, listing := range store.records {
		if key.assetID == assetID {
			result = append(result, listing)
		}
	}
	return result, nil
}

func (store *InMemory) ForSeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	result := []models.Listing{}
	for key, listing := range store.records {
		if key.sellerID == sellerID {
			result = append(result, listing)
		}
	}
	return result, nil
}
