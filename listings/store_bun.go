package listings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/openmarket/markethub/db/models"
)

// BunStore keeps listings in Postgres. The unique (asset_id, seller_id)
// index makes Put an upsert and keeps the one-listing-per-pair invariant in
// the database itself.
type BunStore struct {
	DB *bun.DB
}

func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{DB: db}
}

func (store *BunStore) Get(ctx context.Context, assetID, sellerID string) (models.Listing, error) {
	var listing models.Listing
	err := store.DB.NewSelect().
		Model(&listing).
		Where("asset_id = ? AND seller_id = ?", assetID, sellerID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{AssetID: assetID, SellerID: sellerID}, nil
	}
	return listing, err
}

func (store *BunStore) Put(ctx context.Context, listing *models.Listing) error {
	_, err := store.DB.NewInsert().
		Model(listing).
		On("CONFLICT (asset_id, seller_id) DO UPDATE").
		Set("unit_price = EXCLUDED.unit_price").
		Set("quantity = EXCLUDED.quantity").
		Set("updated_at = now()").
		Exec(ctx)
	return err
}

func (store *BunStore) Remove(ctx context.Context, assetID, sellerID string) error {
	_, err := store.DB.NewDelete().
		Model((*models.Listing)(nil)).
		Where("asset_id = ? AND seller_id = ?", assetID, sellerID).
		Exec(ctx)
	return err
}

func (store *BunStore) DecrementQuantity(ctx context.Context, assetID, sellerID string, delta uint64) error {
	_, err := store.DB.NewUpdate().
		Model((*models.Listing)(nil)).
		Set("quantity = quantity - ?", delta).
		Set("updated_at = now()").
		Where("asset_id = ? AND seller_id = ?", assetID, sellerID).
		Exec(ctx)
	return err
}

func (store *BunStore) ForAsset(ctx context.Context, assetID string) ([]models.Listing, error) {
	result := []models.Listing{}
	err := store.DB.NewSelect().
		Model(&result).
		Where("asset_id = ?", assetID).
		Order("created_at ASC").
		Scan(ctx)
	return result, err
}

func (store *BunStore) ForSeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	result := []models.Listing{}
	err := store.DB.NewSelect().
		Model(&result).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC").
		Scan(ctx)
	return result, err
}
