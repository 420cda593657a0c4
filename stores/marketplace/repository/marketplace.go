package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/marketplace"
	"github.com/crossmart/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) marketplace.Repo {
	return &impl{q}
}

func (im *impl) selector(chainId domain.ChainId) bson.M {
	return bson.M{"chainId": chainId}
}

func (im *impl) FindOne(ctx ctx.Ctx, chainId domain.ChainId) (*marketplace.Config, error) {
	res := marketplace.Config{}
	if err := im.q.FindOne(ctx, domain.TableMarketplaceConfigs, im.selector(chainId), &res); err != nil {
		if err != query.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
			}).Error("failed to q.FindOne")
		}
		return nil, err
	}
	return &res, nil
}

func (im *impl) Upsert(ctx ctx.Ctx, cfg *marketplace.Config) error {
	if err := im.q.Upsert(ctx, domain.TableMarketplaceConfigs, im.selector(cfg.ChainId), cfg); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *impl) SetFee(ctx ctx.Ctx, chainId domain.ChainId, feeBps int64) error {
	if err := im.q.Patch(ctx, domain.TableMarketplaceConfigs, im.selector(chainId), bson.M{"feeBps": feeBps}); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"feeBps":  feeBps,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *impl) AddApprovedCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address) error {
	res := marketplace.Config{}
	if err := im.q.Push(ctx, domain.TableMarketplaceConfigs, im.selector(chainId), &res, "approvedCollections", collection.ToLower()); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
		}).Error("failed to q.Push")
		return err
	}
	return nil
}

func (im *impl) RemoveApprovedCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address) error {
	res := marketplace.Config{}
	if err := im.q.Pull(ctx, domain.TableMarketplaceConfigs, im.selector(chainId), &res, "approvedCollections", collection.ToLower()); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"chainId":    chainId,
			"collection": collection,
		}).Error("failed to q.Pull")
		return err
	}
	return nil
}

func (im *impl) SetRemoteMarketplace(ctx ctx.Ctx, chainId domain.ChainId, destChainId domain.ChainId, dest string) error {
	field := fmt.Sprintf("remoteMarketplaces.%d", destChainId)
	update := bson.M{"$set": bson.M{field: dest}}
	if err := im.q.CustomPatch(ctx, domain.TableMarketplaceConfigs, im.selector(chainId), update, false); err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"chainId":     chainId,
			"destChainId": destChainId,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
