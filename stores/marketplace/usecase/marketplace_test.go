package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/marketplace"
	mMarketplace "github.com/crossmart/goapi/domain/marketplace/mocks"
	mContract "github.com/crossmart/goapi/service/chain/contract/mocks"
)

type marketplaceSuite struct {
	suite.Suite

	marketplaceRepo *mMarketplace.Repo
	erc20           *mContract.Erc20Contract
	im              marketplace.UseCase
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.erc20 = &mContract.Erc20Contract{}
	s.im = New(&MarketplaceUseCaseCfg{
		MarketplaceRepo: s.marketplaceRepo,
		Erc20:           s.erc20,
	})
}

func (s *marketplaceSuite) TearDownTest() {
	s.marketplaceRepo.AssertExpectations(s.T())
	s.erc20.AssertExpectations(s.T())
}

var (
	chainId    = domain.ChainId(1)
	owner      = domain.Address("0xbeef000000000000000000000000000000000001")
	stranger   = domain.Address("0xa000000000000000000000000000000000000002")
	collection = domain.Address("0xc000000000000000000000000000000000000001")
)

func (s *marketplaceSuite) config() *marketplace.Config {
	return &marketplace.Config{
		ChainId:      chainId,
		Owner:        owner,
		FeeBps:       200,
		BridgeRouter: domain.Address("0xb000000000000000000000000000000000000001"),
		SwapRouter:   domain.Address("0xb000000000000000000000000000000000000002"),
		StableToken:  domain.Address("0xd000000000000000000000000000000000000001"),
	}
}

func (s *marketplaceSuite) TestApproveCollectionRejectsNonOwner() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)

	err := s.im.ApproveCollection(ctx, chainId, collection, stranger)
	s.Equal(domain.ErrNotMarketOwner, err)
}

func (s *marketplaceSuite) TestApproveCollection() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.marketplaceRepo.On("AddApprovedCollection", mock.Anything, chainId, collection).Return(nil)

	s.NoError(s.im.ApproveCollection(ctx, chainId, collection, owner))
}

func (s *marketplaceSuite) TestApproveCollectionIdempotent() {
	ctx := bCtx.Background()
	cfg := s.config()
	cfg.ApprovedCollections = []domain.Address{collection}
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(cfg, nil)

	// already approved, no write
	s.NoError(s.im.ApproveCollection(ctx, chainId, collection, owner))
}

func (s *marketplaceSuite) TestRevokeCollection() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.marketplaceRepo.On("RemoveApprovedCollection", mock.Anything, chainId, collection).Return(nil)

	s.NoError(s.im.RevokeCollection(ctx, chainId, collection, owner))
}

func (s *marketplaceSuite) TestSetFeeAboveDenominatorIsAllowed() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.marketplaceRepo.On("SetFee", mock.Anything, chainId, int64(10001)).Return(nil)

	s.NoError(s.im.SetFee(ctx, chainId, int64(10001), owner))
}

func (s *marketplaceSuite) TestSetRemoteMarketplace() {
	ctx := bCtx.Background()
	dest := "0x000000000000000000000000e000000000000000000000000000000000000001"
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.marketplaceRepo.On("SetRemoteMarketplace", mock.Anything, chainId, domain.ChainId(137), dest).Return(nil)

	s.NoError(s.im.SetRemoteMarketplace(ctx, chainId, domain.ChainId(137), dest, owner))
}

func (s *marketplaceSuite) TestGrantRouterApproval() {
	ctx := bCtx.Background()
	cfg := s.config()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(cfg, nil)
	s.erc20.On("Approve", mock.Anything, int32(chainId), string(cfg.StableToken), string(cfg.BridgeRouter), maxApproval).Return(domain.TxHash("0x1"), nil)
	s.erc20.On("Approve", mock.Anything, int32(chainId), string(cfg.StableToken), string(cfg.SwapRouter), maxApproval).Return(domain.TxHash("0x2"), nil)

	s.NoError(s.im.GrantRouterApproval(ctx, chainId, owner))
}

func (s *marketplaceSuite) TestGrantRouterApprovalRejectsNonOwner() {
	ctx := bCtx.Background()
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)

	err := s.im.GrantRouterApproval(ctx, chainId, stranger)
	s.Equal(domain.ErrNotMarketOwner, err)
}
