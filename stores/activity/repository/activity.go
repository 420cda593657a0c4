package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/activity"
	"github.com/crossmart/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) activity.Repo {
	return &impl{q}
}

func (im *impl) Insert(ctx ctx.Ctx, item *activity.Activity) error {
	if err := im.q.Insert(ctx, domain.TableActivities, item); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": item,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) makeQuery(opts ...activity.FindAllOptionsFunc) (bson.M, error) {
	options, err := activity.GetFindAllOptions(opts...)
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

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	if options.Type != nil {
		query["type"] = *options.Type
	}

	return query, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("im.makeQuery failed")
		return nil, err
	}

	options, _ := activity.GetFindAllOptions(opts...)
	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*activity.Activity{}
	if err := im.q.Search(ctx, domain.TableActivities, offset, limit, "-time", query, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
