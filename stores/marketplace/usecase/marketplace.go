package usecase

import (
	"math/big"

	"github.com/crossmart/goapi/base/bps"
	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/marketplace"
	"github.com/crossmart/goapi/service/chain/contract"
)

// unlimited erc20 allowance, 2^256-1
var maxApproval = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type MarketplaceUseCaseCfg struct {
	MarketplaceRepo marketplace.Repo
	Erc20           contract.Erc20Contract
}

type impl struct {
	marketplaceRepo marketplace.Repo
	erc20           contract.Erc20Contract
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		marketplaceRepo: cfg.MarketplaceRepo,
		erc20:           cfg.Erc20,
	}
}

func (im *impl) GetConfig(ctx ctx.Ctx, chainId domain.ChainId) (*marketplace.Config, error) {
	cfg, err := im.marketplaceRepo.FindOne(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceRepo.FindOne")
		return nil, err
	}
	return cfg, nil
}

func (im *impl) requireOwner(ctx ctx.Ctx, chainId domain.ChainId, caller domain.Address) (*marketplace.Config, error) {
	cfg, err := im.marketplaceRepo.FindOne(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceRepo.FindOne")
		return nil, err
	}
	if !cfg.Owner.Equals(caller) {
		return nil, domain.ErrNotMarketOwner
	}
	return cfg, nil
}

func (im *impl) ApproveCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, caller domain.Address) error {
	cfg, err := im.requireOwner(ctx, chainId, caller)
	if err != nil {
		return err
	}
	if cfg.IsCollectionApproved(collection) {
		return nil
	}
	return im.marketplaceRepo.AddApprovedCollection(ctx, chainId, collection)
}

func (im *impl) RevokeCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, caller domain.Address) error {
	if _, err := im.requireOwner(ctx, chainId, caller); err != nil {
		return err
	}
	return im.marketplaceRepo.RemoveApprovedCollection(ctx, chainId, collection)
}

func (im *impl) SetFee(ctx ctx.Ctx, chainId domain.ChainId, feeBps int64, caller domain.Address) error {
	if _, err := im.requireOwner(ctx, chainId, caller); err != nil {
		return err
	}
	if feeBps > bps.Denominator {
		// allowed, but every sale would pay out nothing or underflow
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"feeBps":  feeBps,
		}).Warn("fee set above denominator")
	}
	return im.marketplaceRepo.SetFee(ctx, chainId, feeBps)
}

func (im *impl) SetRemoteMarketplace(ctx ctx.Ctx, chainId domain.ChainId, destChainId domain.ChainId, dest string, caller domain.Address) error {
	if _, err := im.requireOwner(ctx, chainId, caller); err != nil {
		return err
	}
	return im.marketplaceRepo.SetRemoteMarketplace(ctx, chainId, destChainId, dest)
}

func (im *impl) GrantRouterApproval(ctx ctx.Ctx, chainId domain.ChainId, caller domain.Address) error {
	cfg, err := im.requireOwner(ctx, chainId, caller)
	if err != nil {
		return err
	}

	for _, spender := range []domain.Address{cfg.BridgeRouter, cfg.SwapRouter} {
		if spender.IsEmpty() {
			continue
		}
		if _, err := im.erc20.Approve(ctx, int32(chainId), string(cfg.StableToken), string(spender), maxApproval); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"spender": spender,
			}).Error("failed to erc20.Approve")
			return err
		}
	}
	return nil
}
