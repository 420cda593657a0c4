package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
	mActivity "github.com/crossmart/goapi/domain/activity/mocks"
	"github.com/crossmart/goapi/domain/listing"
	mListing "github.com/crossmart/goapi/domain/listing/mocks"
	"github.com/crossmart/goapi/domain/marketplace"
	mMarketplace "github.com/crossmart/goapi/domain/marketplace/mocks"
	"github.com/crossmart/goapi/domain/settlement"
	mSettlement "github.com/crossmart/goapi/domain/settlement/mocks"
	mBridge "github.com/crossmart/goapi/service/bridge/mocks"
	mChain "github.com/crossmart/goapi/service/chain/mocks"
	mContract "github.com/crossmart/goapi/service/chain/contract/mocks"
	"github.com/crossmart/goapi/service/query"
	"github.com/crossmart/goapi/service/swap"
	mSwap "github.com/crossmart/goapi/service/swap/mocks"
)

type settlementSuite struct {
	suite.Suite

	listingRepo     *mListing.Repo
	marketplaceRepo *mMarketplace.Repo
	activityRepo    *mActivity.Repo
	receiptRepo     *mSettlement.ReceiptRepo
	erc721          *mContract.Erc721Contract
	erc20           *mContract.Erc20Contract
	swapService     *mSwap.Service
	bridgeService   *mBridge.Service
	chainService    *mChain.Client
	im              settlement.UseCase
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(settlementSuite))
}

func (s *settlementSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.activityRepo = &mActivity.Repo{}
	s.receiptRepo = &mSettlement.ReceiptRepo{}
	s.erc721 = &mContract.Erc721Contract{}
	s.erc20 = &mContract.Erc20Contract{}
	s.swapService = &mSwap.Service{}
	s.bridgeService = &mBridge.Service{}
	s.chainService = &mChain.Client{}
	s.im = New(&SettlementUseCaseCfg{
		ListingRepo:     s.listingRepo,
		MarketplaceRepo: s.marketplaceRepo,
		ActivityRepo:    s.activityRepo,
		ReceiptRepo:     s.receiptRepo,
		Erc721:          s.erc721,
		Erc20:           s.erc20,
		SwapService:     s.swapService,
		BridgeService:   s.bridgeService,
		ChainService:    s.chainService,
	})
}

func (s *settlementSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.receiptRepo.AssertExpectations(s.T())
	s.erc721.AssertExpectations(s.T())
	s.erc20.AssertExpectations(s.T())
	s.swapService.AssertExpectations(s.T())
	s.bridgeService.AssertExpectations(s.T())
	s.chainService.AssertExpectations(s.T())
}

var (
	chainId    = domain.ChainId(1)
	srcChainId = domain.ChainId(137)
	collection = domain.Address("0xc000000000000000000000000000000000000001")
	tokenId    = domain.TokenId("42")
	lister     = domain.Address("0xa000000000000000000000000000000000000001")
	buyer      = domain.Address("0xa000000000000000000000000000000000000002")
	router     = domain.Address("0xb000000000000000000000000000000000000001")
	stable     = domain.Address("0xd000000000000000000000000000000000000001")
	wnative    = domain.Address("0xd000000000000000000000000000000000000002")
	operator   = common.HexToAddress("0x9000000000000000000000000000000000000001")
	price      = domain.Amount("1000000000000000000")
	listingId  = listing.Id{CollectionAddress: collection, TokenId: tokenId}
)

func (s *settlementSuite) config() *marketplace.Config {
	return &marketplace.Config{
		ChainId:       chainId,
		Owner:         domain.Address("0xbeef000000000000000000000000000000000001"),
		FeeBps:        200,
		BridgeRouter:  router,
		SwapRouter:    domain.Address("0xb000000000000000000000000000000000000002"),
		StableToken:   stable,
		WrappedNative: wnative,
		SwapPoolFee:   3000,
		RemoteMarketplaces: map[string]string{
			"137": "0x000000000000000000000000e000000000000000000000000000000000000001",
		},
	}
}

func (s *settlementSuite) activeListing(status listing.Status) *listing.Listing {
	return &listing.Listing{
		ListingId:         7,
		ChainId:           chainId,
		Lister:            lister,
		CollectionAddress: collection,
		TokenId:           tokenId,
		Price:             price,
		Status:            status,
	}
}

func (s *settlementSuite) TestBuyLocalRejectsInactive() {
	ctx := bCtx.Background()
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusInactive), nil)

	_, err := s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, price)
	s.Equal(domain.ErrNotActiveLocalListing, err)
}

func (s *settlementSuite) TestBuyLocalRejectsNeverListed() {
	ctx := bCtx.Background()
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, query.ErrNotFound)

	_, err := s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, price)
	s.Equal(domain.ErrNotActiveLocalListing, err)
}

func (s *settlementSuite) TestBuyLocalExactPayment() {
	ctx := bCtx.Background()
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveLocal), nil)

	_, err := s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, domain.Amount("999999999999999999"))
	s.Equal(domain.ErrInsufficientFunds, err)

	_, err = s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, domain.Amount("1000000000000000001"))
	s.Equal(domain.ErrExcessFunds, err)
}

func (s *settlementSuite) TestBuyLocalPaysNetOfFee() {
	ctx := bCtx.Background()
	net, _ := new(big.Int).SetString("980000000000000000", 10)
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveLocal), nil)
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.erc721.On("TransferFrom", mock.Anything, int32(chainId), string(collection), string(lister), string(buyer), big.NewInt(42)).Return(domain.TxHash("0x1"), nil)
	s.chainService.On("TransferNative", mock.Anything, int32(chainId), common.HexToAddress(string(lister)), net).Return(domain.TxHash("0x2"), nil)
	s.listingRepo.On("Patch", mock.Anything, listingId, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusInactive
	})).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	got, err := s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, price)
	s.NoError(err)
	s.Equal(int64(7), got.ListingId)
	s.Equal(domain.Amount("980000000000000000"), got.NetAmount)
}

func (s *settlementSuite) TestBuyLocalCrosschainListingIsPurchasable() {
	ctx := bCtx.Background()
	net, _ := new(big.Int).SetString("980000000000000000", 10)
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveCrosschain), nil)
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.erc721.On("TransferFrom", mock.Anything, int32(chainId), string(collection), string(lister), string(buyer), big.NewInt(42)).Return(domain.TxHash("0x1"), nil)
	s.chainService.On("TransferNative", mock.Anything, int32(chainId), common.HexToAddress(string(lister)), net).Return(domain.TxHash("0x2"), nil)
	s.listingRepo.On("Patch", mock.Anything, listingId, mock.Anything).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	_, err := s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, price)
	s.NoError(err)
}

func (s *settlementSuite) TestBuyLocalPayoutFailureReturnsToken() {
	ctx := bCtx.Background()
	net, _ := new(big.Int).SetString("980000000000000000", 10)
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveLocal), nil)
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.erc721.On("TransferFrom", mock.Anything, int32(chainId), string(collection), string(lister), string(buyer), big.NewInt(42)).Return(domain.TxHash("0x1"), nil)
	s.chainService.On("TransferNative", mock.Anything, int32(chainId), common.HexToAddress(string(lister)), net).Return(domain.TxHash(""), errors.New("reverted"))
	// compensating transfer sends the token back
	s.erc721.On("TransferFrom", mock.Anything, int32(chainId), string(collection), string(buyer), string(lister), big.NewInt(42)).Return(domain.TxHash("0x3"), nil)

	_, err := s.im.BuyLocal(ctx, chainId, collection, tokenId, buyer, price)
	s.Equal(domain.ErrFundsTransferFailure, err)
}

func (s *settlementSuite) TestBuyCrosschainUnknownRemote() {
	ctx := bCtx.Background()
	cfg := s.config()
	cfg.RemoteMarketplaces = nil
	s.marketplaceRepo.On("FindOne", mock.Anything, srcChainId).Return(cfg, nil)

	err := s.im.BuyCrosschain(ctx, srcChainId, chainId, collection, tokenId, buyer, price, price)
	s.Equal(domain.ErrUnknownRemoteMarket, err)
}

func (s *settlementSuite) TestBuyCrosschainRequiresFeePlusPrice() {
	ctx := bCtx.Background()
	cfg := s.config()
	cfg.ChainId = srcChainId
	cfg.RemoteMarketplaces = map[string]string{"1": "0xe0"}
	s.marketplaceRepo.On("FindOne", mock.Anything, srcChainId).Return(cfg, nil)
	s.bridgeService.On("QuoteFee", mock.Anything, srcChainId, chainId, mock.Anything).Return(big.NewInt(1000), nil)

	// attached value equals the price exactly, missing the bridge fee
	err := s.im.BuyCrosschain(ctx, srcChainId, chainId, collection, tokenId, buyer, price, price)
	s.Equal(domain.ErrInsufficientFunds, err)
}

func (s *settlementSuite) TestBuyCrosschainSwapsAndDispatches() {
	ctx := bCtx.Background()
	cfg := s.config()
	cfg.ChainId = srcChainId
	cfg.RemoteMarketplaces = map[string]string{"1": "0xe0"}
	native, _ := new(big.Int).SetString(string(price), 10)
	attached, _ := new(big.Int).SetString("1000000000000001000", 10)
	stableOut, _ := new(big.Int).SetString("999000000000000000", 10)
	minOut, _ := new(big.Int).SetString("989010000000000000", 10)

	s.marketplaceRepo.On("FindOne", mock.Anything, srcChainId).Return(cfg, nil)
	s.bridgeService.On("QuoteFee", mock.Anything, srcChainId, chainId, mock.Anything).Return(big.NewInt(1000), nil)
	s.chainService.On("Operator").Return(operator)
	s.swapService.On("SwapExactInputSingle", mock.Anything, mock.MatchedBy(func(p *swap.Params) bool {
		return p.ChainId == srcChainId &&
			p.TokenIn == cfg.WrappedNative &&
			p.TokenOut == cfg.StableToken &&
			p.AmountIn.Cmp(native) == 0
	})).Return(stableOut, nil)
	s.bridgeService.On("Dispatch", mock.Anything, srcChainId, chainId, "0xe0", stableOut, minOut, big.NewInt(1000), buyer, mock.Anything).Return(domain.TxHash("0x1"), nil)

	err := s.im.BuyCrosschain(ctx, srcChainId, chainId, collection, tokenId, buyer, price, domain.AmountFromBigInt(attached))
	s.NoError(err)
}

func (s *settlementSuite) purchasePayload() []byte {
	payload, err := (&settlement.PurchasePayload{
		Collection: collection,
		TokenId:    tokenId,
		Recipient:  buyer,
	}).Encode()
	s.Require().NoError(err)
	return payload
}

func (s *settlementSuite) TestOnBridgeReceiveRejectsNonRouter() {
	ctx := bCtx.Background()
	s.bridgeService.On("Router", chainId).Return(router, true)

	_, err := s.im.OnBridgeReceive(ctx, chainId, buyer, srcChainId, "0xe0", 1, stable, price, s.purchasePayload())
	s.Equal(domain.ErrNotFromRouter, err)
}

func (s *settlementSuite) TestOnBridgeReceiveAcknowledgesDuplicate() {
	ctx := bCtx.Background()
	rid := settlement.ReceiptId{ChainId: chainId, SrcChainId: srcChainId, Nonce: 1}
	settled := &settlement.BridgeReceipt{ChainId: chainId, SrcChainId: srcChainId, Nonce: 1, Outcome: settlement.OutcomeSold}
	s.bridgeService.On("Router", chainId).Return(router, true)
	s.receiptRepo.On("FindOne", mock.Anything, rid).Return(settled, nil)

	got, err := s.im.OnBridgeReceive(ctx, chainId, router, srcChainId, "0xe0", 1, stable, price, s.purchasePayload())
	s.NoError(err)
	s.Equal(settled, got)
}

func (s *settlementSuite) TestOnBridgeReceiveSellsWithinTolerance() {
	ctx := bCtx.Background()
	rid := settlement.ReceiptId{ChainId: chainId, SrcChainId: srcChainId, Nonce: 1}
	stableIn, _ := new(big.Int).SetString("995000000000000000", 10)
	// swap output above the 1% tolerance floor of the 1e18 price
	output, _ := new(big.Int).SetString("991000000000000000", 10)
	net, _ := new(big.Int).SetString("971180000000000000", 10)

	s.bridgeService.On("Router", chainId).Return(router, true)
	s.receiptRepo.On("FindOne", mock.Anything, rid).Return(nil, query.ErrNotFound)
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveCrosschain), nil)
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.chainService.On("Operator").Return(operator)
	s.swapService.On("SwapExactInputSingle", mock.Anything, mock.MatchedBy(func(p *swap.Params) bool {
		return p.TokenIn == stable && p.TokenOut == wnative && p.AmountIn.Cmp(stableIn) == 0
	})).Return(output, nil)
	s.erc721.On("TransferFrom", mock.Anything, int32(chainId), string(collection), string(lister), string(buyer), big.NewInt(42)).Return(domain.TxHash("0x1"), nil)
	s.chainService.On("TransferNative", mock.Anything, int32(chainId), common.HexToAddress(string(lister)), net).Return(domain.TxHash("0x2"), nil)
	s.listingRepo.On("Patch", mock.Anything, listingId, mock.Anything).Return(nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.receiptRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *settlement.BridgeReceipt) bool {
		return r.Outcome == settlement.OutcomeSold && r.Amount == domain.AmountFromBigInt(net)
	})).Return(nil)

	got, err := s.im.OnBridgeReceive(ctx, chainId, router, srcChainId, "0xe0", 1, stable, domain.AmountFromBigInt(stableIn), s.purchasePayload())
	s.NoError(err)
	s.Equal(settlement.OutcomeSold, got.Outcome)
	s.Equal(int64(7), got.ListingId)
}

func (s *settlementSuite) TestOnBridgeReceiveRefundsNativeBelowTolerance() {
	ctx := bCtx.Background()
	rid := settlement.ReceiptId{ChainId: chainId, SrcChainId: srcChainId, Nonce: 2}
	stableIn, _ := new(big.Int).SetString("995000000000000000", 10)
	// one wei under the tolerance floor of 990000000000000000
	output, _ := new(big.Int).SetString("989999999999999999", 10)

	s.bridgeService.On("Router", chainId).Return(router, true)
	s.receiptRepo.On("FindOne", mock.Anything, rid).Return(nil, query.ErrNotFound)
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveCrosschain), nil)
	s.marketplaceRepo.On("FindOne", mock.Anything, chainId).Return(s.config(), nil)
	s.chainService.On("Operator").Return(operator)
	s.swapService.On("SwapExactInputSingle", mock.Anything, mock.Anything).Return(output, nil)
	s.chainService.On("TransferNative", mock.Anything, int32(chainId), common.HexToAddress(string(buyer)), output).Return(domain.TxHash("0x1"), nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.receiptRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *settlement.BridgeReceipt) bool {
		return r.Outcome == settlement.OutcomeNativeRefund && r.Amount == domain.AmountFromBigInt(output)
	})).Return(nil)

	got, err := s.im.OnBridgeReceive(ctx, chainId, router, srcChainId, "0xe0", 2, stable, domain.AmountFromBigInt(stableIn), s.purchasePayload())
	s.NoError(err)
	s.Equal(settlement.OutcomeNativeRefund, got.Outcome)
	// the listing was not deactivated
	s.listingRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementSuite) TestOnBridgeReceiveRefundsStableOnFailure() {
	ctx := bCtx.Background()
	rid := settlement.ReceiptId{ChainId: chainId, SrcChainId: srcChainId, Nonce: 3}
	stableIn, _ := new(big.Int).SetString("995000000000000000", 10)

	s.bridgeService.On("Router", chainId).Return(router, true)
	s.receiptRepo.On("FindOne", mock.Anything, rid).Return(nil, query.ErrNotFound)
	// locally listed only, the cross-chain purchase cannot settle
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(s.activeListing(listing.StatusActiveLocal), nil)
	s.erc20.On("Transfer", mock.Anything, int32(chainId), string(stable), string(buyer), stableIn).Return(domain.TxHash("0x1"), nil)
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.receiptRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *settlement.BridgeReceipt) bool {
		return r.Outcome == settlement.OutcomeStableRefund && r.Amount == domain.AmountFromBigInt(stableIn)
	})).Return(nil)

	got, err := s.im.OnBridgeReceive(ctx, chainId, router, srcChainId, "0xe0", 3, stable, domain.AmountFromBigInt(stableIn), s.purchasePayload())
	s.NoError(err)
	s.Equal(settlement.OutcomeStableRefund, got.Outcome)
	s.Equal(domain.Amount("995000000000000000"), got.StableAmount)
}
