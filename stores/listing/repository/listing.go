package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/database/mongoclient"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/listing"
	"github.com/crossmart/goapi/service/query"
)

type listingCounter struct {
	ChainId domain.ChainId `bson:"chainId"`
	Seq     int64          `bson:"seq"`
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if options.Collection != nil {
		query["collectionAddress"] = *options.Collection
	}

	if options.Lister != nil {
		query["lister"] = *options.Lister
	}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	return query, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("im.makeQuery failed")
		return nil, err
	}

	options, _ := listing.GetFindAllOptions(opts...)
	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*listing.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, offset, limit, "-listingId", query, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	qry := bson.M{
		"collectionAddress": id.CollectionAddress.ToLower(),
		"tokenId":           id.TokenId,
	}

	res := listing.Listing{}
	if err := im.q.FindOne(ctx, domain.TableListings, qry, &res); err != nil {
		if err != query.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":   err,
				"query": qry,
			}).Error("failed to q.FindOne")
		}
		return nil, err
	}

	return &res, nil
}

func (im *impl) Upsert(ctx ctx.Ctx, item *listing.Listing) error {
	item.LowerCase()
	selector := bson.M{
		"collectionAddress": item.CollectionAddress,
		"tokenId":           item.TokenId,
	}

	if err := im.q.Upsert(ctx, domain.TableListings, selector, item); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Upsert")
		return err
	}

	return nil
}

func (im *impl) Patch(ctx ctx.Ctx, id listing.Id, patchable listing.Patchable) error {
	selector := bson.M{
		"collectionAddress": id.CollectionAddress.ToLower(),
		"tokenId":           id.TokenId,
	}

	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableListings, selector, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *impl) NextListingId(ctx ctx.Ctx, chainId domain.ChainId) (int64, error) {
	selector := bson.M{"chainId": chainId}

	res := listingCounter{}
	if err := im.q.Increment(ctx, domain.TableListingCounters, selector, &res, "seq", int64(1)); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("failed to q.Increment")
		return 0, err
	}

	return res.Seq, nil
}
