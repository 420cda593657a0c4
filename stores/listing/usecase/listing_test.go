package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
	mActivity "github.com/crossmart/goapi/domain/activity/mocks"
	"github.com/crossmart/goapi/domain/listing"
	mListing "github.com/crossmart/goapi/domain/listing/mocks"
	"github.com/crossmart/goapi/domain/marketplace"
	mMarketplace "github.com/crossmart/goapi/domain/marketplace/mocks"
	mContract "github.com/crossmart/goapi/service/chain/contract/mocks"
	"github.com/crossmart/goapi/service/query"
)

type listingSuite struct {
	suite.Suite

	listingRepo     *mListing.Repo
	marketplaceRepo *mMarketplace.Repo
	activityRepo    *mActivity.Repo
	erc721          *mContract.Erc721Contract
	im              listing.UseCase
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.activityRepo = &mActivity.Repo{}
	s.erc721 = &mContract.Erc721Contract{}
	s.im = New(&ListingUseCaseCfg{
		ListingRepo:     s.listingRepo,
		MarketplaceRepo: s.marketplaceRepo,
		ActivityRepo:    s.activityRepo,
		Erc721:          s.erc721,
	})
}

func (s *listingSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.marketplaceRepo.AssertExpectations(s.T())
	s.erc721.AssertExpectations(s.T())
}

var (
	chainId    = domain.ChainId(1)
	collection = domain.Address("0xc000000000000000000000000000000000000001")
	tokenId    = domain.TokenId("42")
	lister     = domain.Address("0xa000000000000000000000000000000000000001")
	stranger   = domain.Address("0xa000000000000000000000000000000000000002")
	price      = domain.Amount("1000000000000000000")
)

func (s *listingSuite) marketConfig(approved ...domain.Address) *marketplace.Config {
	return &marketplace.Config{
		ChainId:             chainId,
		Owner:               domain.Address("0xbeef000000000000000000000000000000000001"),
		FeeBps:              200,
		ApprovedCollections: approved,
	}
}

func (s *listingSuite) TestListRejectsUnapprovedCollection() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.marketConfig(), nil)

	_, err := s.im.List(ctx, chainId, collection, tokenId, price, false, lister)
	s.Equal(domain.ErrNotApprovedNFT, err)
}

func (s *listingSuite) TestListRejectsNonOwner() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.marketConfig(collection), nil)
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)

	_, err := s.im.List(ctx, chainId, collection, tokenId, price, false, stranger)
	s.Equal(domain.ErrNotTokenOwner, err)
}

func (s *listingSuite) TestListLocal() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.marketConfig(collection), nil)
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)
	s.listingRepo.On("NextListingId", mock.Anything, chainId).Return(int64(7), nil)
	s.listingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.ListingId == 7 && l.Status == listing.StatusActiveLocal && l.Price == price
	})).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := s.im.List(ctx, chainId, collection, tokenId, price, false, lister)
	s.NoError(err)
	s.Equal(int64(7), got.ListingId)
	s.Equal(listing.StatusActiveLocal, got.Status)
	s.Equal("1", got.DisplayPrice)
}

func (s *listingSuite) TestListCrosschain() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.marketConfig(collection), nil)
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)
	s.listingRepo.On("NextListingId", mock.Anything, chainId).Return(int64(8), nil)
	s.listingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Status == listing.StatusActiveCrosschain
	})).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := s.im.List(ctx, chainId, collection, tokenId, price, true, lister)
	s.NoError(err)
	s.Equal(listing.StatusActiveCrosschain, got.Status)
}

func (s *listingSuite) TestEditPriceRejectsNonOwner() {
	ctx := bCtx.Background()
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)

	err := s.im.EditPrice(ctx, chainId, collection, tokenId, price, stranger)
	s.Equal(domain.ErrNotTokenOwner, err)
}

func (s *listingSuite) TestEditPriceNonexistentListing() {
	ctx := bCtx.Background()
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}).Return(nil, query.ErrNotFound)

	err := s.im.EditPrice(ctx, chainId, collection, tokenId, price, lister)
	s.Equal(domain.ErrNonexistentListing, err)
}

func (s *listingSuite) TestEditPriceRejectsNonLister() {
	ctx := bCtx.Background()
	// the token changed hands after listing, the new owner did not relist
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(stranger), nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}).Return(&listing.Listing{
		ListingId:         7,
		ChainId:           chainId,
		Lister:            lister,
		CollectionAddress: collection,
		TokenId:           tokenId,
		Price:             price,
		Status:            listing.StatusActiveLocal,
	}, nil)

	err := s.im.EditPrice(ctx, chainId, collection, tokenId, price, stranger)
	s.Equal(domain.ErrNotListingOwner, err)
}

func (s *listingSuite) TestEditPricePatchesPriceOnly() {
	ctx := bCtx.Background()
	newPrice := domain.Amount("2000000000000000000")
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}).Return(&listing.Listing{
		ListingId:         7,
		ChainId:           chainId,
		Lister:            lister,
		CollectionAddress: collection,
		TokenId:           tokenId,
		Price:             price,
		Status:            listing.StatusActiveCrosschain,
	}, nil)
	s.listingRepo.On("Patch", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Price != nil && *p.Price == newPrice && p.DisplayPrice != nil && *p.DisplayPrice == "2" && p.Status == nil
	})).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := s.im.EditPrice(ctx, chainId, collection, tokenId, newPrice, lister)
	s.NoError(err)
}

func (s *listingSuite) TestDelistNeverListedSucceeds() {
	ctx := bCtx.Background()
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}).Return(nil, query.ErrNotFound)

	err := s.im.Delist(ctx, chainId, collection, tokenId, lister)
	s.NoError(err)
}

func (s *listingSuite) TestDelistDeactivates() {
	ctx := bCtx.Background()
	s.erc721.On("OwnerOf", mock.Anything, int32(chainId), string(collection), big.NewInt(42)).Return(string(lister), nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}).Return(&listing.Listing{
		ListingId:         7,
		ChainId:           chainId,
		Lister:            lister,
		CollectionAddress: collection,
		TokenId:           tokenId,
		Status:            listing.StatusActiveLocal,
	}, nil)
	s.listingRepo.On("Patch", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusInactive
	})).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := s.im.Delist(ctx, chainId, collection, tokenId, lister)
	s.NoError(err)
}

func (s *listingSuite) TestGetNeverListedReadsInactive() {
	ctx := bCtx.Background()
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{CollectionAddress: collection, TokenId: tokenId}).Return(nil, query.ErrNotFound)

	got, err := s.im.Get(ctx, listing.Id{CollectionAddress: collection, TokenId: tokenId})
	s.NoError(err)
	s.Equal(listing.StatusInactive, got.Status)
	s.Zero(got.ListingId)
}
