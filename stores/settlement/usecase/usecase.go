package usecase

import (
	"time"

	"github.com/crossmart/goapi/base/bps"
	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/activity"
	"github.com/crossmart/goapi/domain/listing"
	"github.com/crossmart/goapi/domain/marketplace"
	"github.com/crossmart/goapi/domain/settlement"
	"github.com/crossmart/goapi/service/bridge"
	"github.com/crossmart/goapi/service/chain"
	"github.com/crossmart/goapi/service/chain/contract"
	"github.com/crossmart/goapi/service/query"
	"github.com/crossmart/goapi/service/swap"
	"github.com/ethereum/go-ethereum/common"
)

type SettlementUseCaseCfg struct {
	ListingRepo     listing.Repo
	MarketplaceRepo marketplace.Repo
	ActivityRepo    activity.Repo
	ReceiptRepo     settlement.ReceiptRepo
	Erc721          contract.Erc721Contract
	Erc20           contract.Erc20Contract
	SwapService     swap.Service
	BridgeService   bridge.Service
	ChainService    chain.Client
}

type impl struct {
	listingRepo     listing.Repo
	marketplaceRepo marketplace.Repo
	activityRepo    activity.Repo
	receiptRepo     settlement.ReceiptRepo
	erc721          contract.Erc721Contract
	erc20           contract.Erc20Contract
	swapService     swap.Service
	bridgeService   bridge.Service
	chainService    chain.Client
}

func New(cfg *SettlementUseCaseCfg) settlement.UseCase {
	return &impl{
		listingRepo:     cfg.ListingRepo,
		marketplaceRepo: cfg.MarketplaceRepo,
		activityRepo:    cfg.ActivityRepo,
		receiptRepo:     cfg.ReceiptRepo,
		erc721:          cfg.Erc721,
		erc20:           cfg.Erc20,
		swapService:     cfg.SwapService,
		bridgeService:   cfg.BridgeService,
		chainService:    cfg.ChainService,
	}
}

func (im *impl) BuyLocal(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, buyer domain.Address, payment domain.Amount) (*settlement.LocalPurchase, error) {
	id := listing.Id{CollectionAddress: collection, TokenId: tokenId}
	item, err := im.listingRepo.FindOne(ctx, id)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotActiveLocalListing
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	if !item.Status.IsPurchasableLocally() {
		return nil, domain.ErrNotActiveLocalListing
	}

	price, err := item.Price.ToBigInt()
	if err != nil {
		ctx.WithField("err", err).Error("stored price is not a valid amount")
		return nil, err
	}
	paid, err := payment.ToBigInt()
	if err != nil {
		return nil, domain.ErrBadParamInput
	}

	// local purchases are exact-payment, both directions are rejected
	switch paid.Cmp(price) {
	case -1:
		return nil, domain.ErrInsufficientFunds
	case 1:
		return nil, domain.ErrExcessFunds
	}

	cfg, err := im.marketplaceRepo.FindOne(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceRepo.FindOne")
		return nil, err
	}

	tokenIdInt, err := tokenId.ToBigInt()
	if err != nil {
		return nil, domain.ErrBadParamInput
	}

	// move the token before the payout so a payment failure can be
	// compensated by sending the token back
	if _, err := im.erc721.TransferFrom(ctx, int32(chainId), string(item.CollectionAddress), string(item.Lister), string(buyer), tokenIdInt); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": id,
		}).Error("failed to erc721.TransferFrom")
		return nil, err
	}

	net := bps.NetOfFee(price, cfg.FeeBps)
	if _, err := im.chainService.TransferNative(ctx, int32(chainId), common.HexToAddress(string(item.Lister)), net); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": id,
		}).Error("failed to pay lister, returning token")
		if _, rbErr := im.erc721.TransferFrom(ctx, int32(chainId), string(item.CollectionAddress), string(buyer), string(item.Lister), tokenIdInt); rbErr != nil {
			ctx.WithFields(log.Fields{
				"err":     rbErr,
				"listing": id,
			}).Error("failed to return token after payout failure")
		}
		return nil, domain.ErrFundsTransferFailure
	}

	inactive := listing.StatusInactive
	if err := im.listingRepo.Patch(ctx, id, listing.Patchable{Status: &inactive}); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": id,
		}).Error("failed to deactivate listing after sale")
		return nil, err
	}

	netAmount := domain.AmountFromBigInt(net)
	im.emit(ctx, &activity.Activity{
		ChainId:           chainId,
		ListingId:         item.ListingId,
		CollectionAddress: item.CollectionAddress,
		TokenId:           item.TokenId,
		Type:              activity.TypeSold,
		Account:           buyer.ToLower(),
		To:                item.Lister,
		Amount:            netAmount,
		Time:              time.Now(),
	})

	return &settlement.LocalPurchase{
		ListingId: item.ListingId,
		Lister:    item.Lister,
		Buyer:     buyer.ToLower(),
		NetAmount: netAmount,
	}, nil
}

func (im *impl) GetReceipt(ctx ctx.Ctx, id settlement.ReceiptId) (*settlement.BridgeReceipt, error) {
	receipt, err := im.receiptRepo.FindOne(ctx, id)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to receiptRepo.FindOne")
		return nil, err
	}
	return receipt, nil
}

// emit appends to the activity feed. A failed append is logged and
// swallowed, the feed is advisory and must not abort a finished settlement.
func (im *impl) emit(ctx ctx.Ctx, item *activity.Activity) {
	if err := im.activityRepo.Insert(ctx, item); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": item,
		}).Warn("failed to activityRepo.Insert")
	}
}
