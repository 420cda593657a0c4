package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/settlement"
	"github.com/crossmart/goapi/service/query"
)

type receiptImpl struct {
	q query.Mongo
}

func NewReceiptRepo(q query.Mongo) settlement.ReceiptRepo {
	return &receiptImpl{q}
}

func (im *receiptImpl) FindOne(ctx ctx.Ctx, id settlement.ReceiptId) (*settlement.BridgeReceipt, error) {
	qry := bson.M{
		"chainId":    id.ChainId,
		"srcChainId": id.SrcChainId,
		"nonce":      id.Nonce,
	}

	res := settlement.BridgeReceipt{}
	if err := im.q.FindOne(ctx, domain.TableBridgeReceipts, qry, &res); err != nil {
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

func (im *receiptImpl) Insert(ctx ctx.Ctx, receipt *settlement.BridgeReceipt) error {
	if err := im.q.Insert(ctx, domain.TableBridgeReceipts, receipt); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"receipt": receipt,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}
