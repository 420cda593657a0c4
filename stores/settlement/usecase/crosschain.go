package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/crossmart/goapi/base/bps"
	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/activity"
	"github.com/crossmart/goapi/domain/listing"
	"github.com/crossmart/goapi/domain/settlement"
	"github.com/crossmart/goapi/service/query"
	"github.com/crossmart/goapi/service/swap"
)

func (im *impl) BuyCrosschain(ctx ctx.Ctx, srcChainId, destChainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, recipient domain.Address, nativePrice, attachedValue domain.Amount) error {
	cfg, err := im.marketplaceRepo.FindOne(ctx, srcChainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceRepo.FindOne")
		return err
	}

	dest, ok := cfg.RemoteMarketplace(destChainId)
	if !ok {
		return domain.ErrUnknownRemoteMarket
	}

	payload, err := (&settlement.PurchasePayload{
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Recipient:  recipient.ToLower(),
	}).Encode()
	if err != nil {
		ctx.WithField("err", err).Error("failed to encode purchase payload")
		return domain.ErrBadParamInput
	}

	fee, err := im.bridgeService.QuoteFee(ctx, srcChainId, destChainId, payload)
	if err != nil {
		ctx.WithField("err", err).Error("failed to bridgeService.QuoteFee")
		return err
	}

	native, err := nativePrice.ToBigInt()
	if err != nil {
		return domain.ErrBadParamInput
	}
	attached, err := attachedValue.ToBigInt()
	if err != nil {
		return domain.ErrBadParamInput
	}

	// at-least payment: the attached value must cover bridge fee plus the
	// native leg, any excess is kept as dispatch slack
	need := new(big.Int).Add(fee, native)
	if attached.Cmp(need) < 0 {
		return domain.ErrInsufficientFunds
	}

	operator := domain.Address(im.chainService.Operator().Hex())
	stableOut, err := im.swapService.SwapExactInputSingle(ctx, &swap.Params{
		ChainId:   srcChainId,
		TokenIn:   cfg.WrappedNative,
		TokenOut:  cfg.StableToken,
		PoolFee:   cfg.SwapPoolFee,
		Recipient: operator,
		AmountIn:  native,
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to swap native leg into stable")
		return err
	}

	minOut := bps.NetOfFee(stableOut, bps.ToleranceBps)
	if _, err := im.bridgeService.Dispatch(ctx, srcChainId, destChainId, dest, stableOut, minOut, fee, recipient, payload); err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"destChainId": destChainId,
		}).Error("failed to bridgeService.Dispatch")
		return err
	}

	return nil
}

func (im *impl) OnBridgeReceive(ctx ctx.Ctx, chainId domain.ChainId, caller domain.Address, srcChainId domain.ChainId, srcAddress string, nonce uint64, stableAsset domain.Address, stableAmount domain.Amount, payload []byte) (*settlement.BridgeReceipt, error) {
	router, ok := im.bridgeService.Router(chainId)
	if !ok || !caller.Equals(router) {
		return nil, domain.ErrNotFromRouter
	}

	rid := settlement.ReceiptId{ChainId: chainId, SrcChainId: srcChainId, Nonce: nonce}
	existing, err := im.receiptRepo.FindOne(ctx, rid)
	if err == nil {
		// redelivery of an already settled nonce, acknowledge without
		// touching funds again
		ctx.WithFields(log.Fields{
			"receiptId": rid,
			"outcome":   existing.Outcome,
		}).Info("duplicate bridge delivery acknowledged")
		return existing, nil
	} else if err != query.ErrNotFound {
		ctx.WithField("err", err).Error("failed to receiptRepo.FindOne")
		return nil, err
	}

	purchase, err := settlement.DecodePurchasePayload(payload)
	if err != nil {
		// no refund target without a decodable payload
		ctx.WithFields(log.Fields{
			"err":       err,
			"receiptId": rid,
		}).Error("failed to decode purchase payload")
		return nil, err
	}

	stable, err := stableAmount.ToBigInt()
	if err != nil {
		return nil, domain.ErrBadParamInput
	}

	res, settleErr := im.settle(ctx, chainId, purchase, stableAsset, stable)
	if settleErr != nil {
		// compensate: the bridged stable amount goes back to the buyer
		ctx.WithFields(log.Fields{
			"err":       settleErr,
			"receiptId": rid,
		}).Warn("settlement failed, refunding stable to buyer")
		if _, err := im.erc20.Transfer(ctx, int32(chainId), string(stableAsset), string(purchase.Recipient), stable); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"receiptId": rid,
			}).Error("failed to refund stable to buyer")
			return nil, domain.ErrFundsTransferFailure
		}
		res = &settleOutcome{
			outcome: settlement.OutcomeStableRefund,
			amount:  stable,
		}
		im.emit(ctx, &activity.Activity{
			ChainId:           chainId,
			CollectionAddress: purchase.Collection,
			TokenId:           purchase.TokenId,
			Type:              activity.TypeStableRefund,
			Account:           purchase.Recipient,
			Amount:            domain.AmountFromBigInt(stable),
			Asset:             stableAsset.ToLower(),
			Time:              time.Now(),
		})
	}

	receipt := &settlement.BridgeReceipt{
		ChainId:           chainId,
		SrcChainId:        srcChainId,
		Nonce:             nonce,
		SrcAddress:        srcAddress,
		StableAsset:       stableAsset.ToLower(),
		StableAmount:      stableAmount,
		Buyer:             purchase.Recipient,
		CollectionAddress: purchase.Collection,
		TokenId:           purchase.TokenId,
		ListingId:         res.listingId,
		Outcome:           res.outcome,
		Amount:            domain.AmountFromBigInt(res.amount),
		Time:              time.Now(),
	}
	if err := im.receiptRepo.Insert(ctx, receipt); err != nil {
		// funds are already disposed of, a persist failure must not turn
		// into a settlement abort
		ctx.WithFields(log.Fields{
			"err":       err,
			"receiptId": rid,
		}).Error("failed to persist bridge receipt")
	}

	return receipt, nil
}

type settleOutcome struct {
	listingId int64
	outcome   settlement.Outcome
	amount    *big.Int
}

// settle attempts the sale on the listing chain. It owns the sold and
// native-refund outcomes, an error return is compensated by the caller
// with a stable refund out of operator funds.
func (im *impl) settle(ctx ctx.Ctx, chainId domain.ChainId, purchase *settlement.PurchasePayload, stableAsset domain.Address, stableAmount *big.Int) (*settleOutcome, error) {
	id := listing.Id{CollectionAddress: purchase.Collection, TokenId: purchase.TokenId}
	item, err := im.listingRepo.FindOne(ctx, id)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotActiveGlobalListing
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	if item.Status != listing.StatusActiveCrosschain {
		return nil, domain.ErrNotActiveGlobalListing
	}

	price, err := item.Price.ToBigInt()
	if err != nil {
		ctx.WithField("err", err).Error("stored price is not a valid amount")
		return nil, err
	}

	cfg, err := im.marketplaceRepo.FindOne(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceRepo.FindOne")
		return nil, err
	}

	operator := domain.Address(im.chainService.Operator().Hex())
	output, err := im.swapService.SwapExactInputSingle(ctx, &swap.Params{
		ChainId:   chainId,
		TokenIn:   stableAsset,
		TokenOut:  cfg.WrappedNative,
		PoolFee:   cfg.SwapPoolFee,
		Recipient: operator,
		AmountIn:  stableAmount,
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to swap stable back into native")
		return nil, err
	}

	if !bps.WithinTolerance(output, price) {
		// swap output misses the price floor: the whole output goes back
		// to the buyer in native and the listing stays purchasable
		if _, err := im.chainService.TransferNative(ctx, int32(chainId), common.HexToAddress(string(purchase.Recipient)), output); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"listing": id,
			}).Error("failed to refund native to buyer")
			return nil, err
		}
		im.emit(ctx, &activity.Activity{
			ChainId:           chainId,
			ListingId:         item.ListingId,
			CollectionAddress: item.CollectionAddress,
			TokenId:           item.TokenId,
			Type:              activity.TypeNativeRefund,
			Account:           purchase.Recipient,
			Amount:            domain.AmountFromBigInt(output),
			Time:              time.Now(),
		})
		return &settleOutcome{
			listingId: item.ListingId,
			outcome:   settlement.OutcomeNativeRefund,
			amount:    output,
		}, nil
	}

	tokenIdInt, err := purchase.TokenId.ToBigInt()
	if err != nil {
		return nil, err
	}

	if _, err := im.erc721.TransferFrom(ctx, int32(chainId), string(item.CollectionAddress), string(item.Lister), string(purchase.Recipient), tokenIdInt); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": id,
		}).Error("failed to erc721.TransferFrom")
		return nil, err
	}

	net := bps.NetOfFee(output, cfg.FeeBps)
	if _, err := im.chainService.TransferNative(ctx, int32(chainId), common.HexToAddress(string(item.Lister)), net); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": id,
		}).Error("failed to pay lister, returning token")
		if _, rbErr := im.erc721.TransferFrom(ctx, int32(chainId), string(item.CollectionAddress), string(purchase.Recipient), string(item.Lister), tokenIdInt); rbErr != nil {
			ctx.WithFields(log.Fields{
				"err":     rbErr,
				"listing": id,
			}).Error("failed to return token after payout failure")
		}
		return nil, err
	}

	inactive := listing.StatusInactive
	if err := im.listingRepo.Patch(ctx, id, listing.Patchable{Status: &inactive}); err != nil {
		// token and funds already moved, the sale stands
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": id,
		}).Error("failed to deactivate listing after sale")
	}

	im.emit(ctx, &activity.Activity{
		ChainId:           chainId,
		ListingId:         item.ListingId,
		CollectionAddress: item.CollectionAddress,
		TokenId:           item.TokenId,
		Type:              activity.TypeSold,
		Account:           purchase.Recipient,
		To:                item.Lister,
		Amount:            domain.AmountFromBigInt(net),
		Time:              time.Now(),
	})

	return &settleOutcome{
		listingId: item.ListingId,
		outcome:   settlement.OutcomeSold,
		amount:    net,
	}, nil
}
