package listings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openmarket/markethub/db/models"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) TestGetMissingReturnsZeroRecord() {
	listing, err := s.store.Get(s.ctx, "asset-1", "alice")
	s.Require().NoError(err)
	s.Equal(int64(0), listing.UnitPrice)
	s.Equal(uint64(0), listing.Quantity)
	s.Equal("asset-1", listing.AssetID)
	s.Equal("alice", listing.SellerID)
}

func (s *InMemoryStoreSuite) TestPutOverwritesExistingRecord() {
	err := s.store.Put(s.ctx, &models.Listing{AssetID: "asset-1", SellerID: "alice", UnitPrice: 10, Quantity: 5})
	s.Require().NoError(err)
	err = s.store.Put(s.ctx, &models.Listing{AssetID: "asset-1", SellerID: "alice", UnitPrice: 7, Quantity: 2})
	s.Require().NoError(err)

	listing, err := s.store.Get(s.ctx, "asset-1", "alice")
	s.Require().NoError(err)
	s.Equal(int64(7), listing.UnitPrice)
	s.Equal(uint64(2), listing.Quantity)
}

func (s *InMemoryStoreSuite) TestPutKeysByAssetAndSeller() {
	s.Require().NoError(s.store.Put(s.ctx, &models.Listing{AssetID: "asset-1", SellerID: "alice", UnitPrice: 10, Quantity: 5}))
	s.Require().NoError(s.store.Put(s.ctx, &models.Listing{AssetID: "asset-1", SellerID: "bob", UnitPrice: 12, Quantity: 3}))
	s.Require().NoError(s.store.Put(s.ctx, &models.Listing{AssetID: "asset-2", SellerID: "alice", UnitPrice: 1, Quantity: 1}))

	forAsset, err := s.store.ForAsset(s.ctx, "asset-1")
	s.Require().NoError(err)
	s.Len(forAsset, 2)

	forSeller, err := s.store.ForSeller(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(forSeller, 2)
}

func (s *InMemoryStoreSuite) TestRemoveIsIdempotent() {
	s.Require().NoError(s.store.Put(s.ctx, &models.Listing{AssetID: "asset-1", SellerID: "alice", UnitPrice: 10, Quantity: 5}))

	s.Require().NoError(s.store.Remove(s.ctx, "asset-1", "alice"))
	s.Require().NoError(s.store.Remove(s.ctx, "asset-1", "alice"))

	listing, err := s.store.Get(s.ctx, "asset-1", "alice")
	s.Require().NoError(err)
	s.Equal(uint64(0), listing.Quantity)
}

func (s *InMemoryStoreSuite) TestDecrementQuantity() {
	s.Require().NoError(s.store.Put(s.ctx, &models.Listing{AssetID: "asset-1", SellerID: "alice", UnitPrice: 10, Quantity: 5}))
	s.Require().NoError(s.store.DecrementQuantity(s.ctx, "asset-1", "alice", 3))

	listing, err := s.store.Get(s.ctx, "asset-1", "alice")
	s.Require().NoError(err)
	s.Equal(uint64(2), listing.Quantity)
	s.Equal(int64(10), listing.UnitPrice)
}
