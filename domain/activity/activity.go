package activity

import (
	"time"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
)

type Type string

const (
	TypeList         Type = "list"
	TypePriceChanged Type = "priceChanged"
	TypeDelist       Type = "delist"
	TypeSold         Type = "sold"
	TypeStableRefund Type = "stableRefund"
	TypeNativeRefund Type = "nativeRefund"
)

// Activity is one entry of the append-only marketplace activity feed
// consumed by external indexers.
type Activity struct {
	ChainId           domain.ChainId `json:"chainId" bson:"chainId"`
	ListingId         int64          `json:"listingId" bson:"listingId"`
	CollectionAddress domain.Address `json:"collectionAddress" bson:"collectionAddress"`
	TokenId           domain.TokenId `json:"tokenId" bson:"tokenId"`
	Type              Type           `json:"type" bson:"type"`
	Account           domain.Address `json:"account" bson:"account"`
	To                domain.Address `json:"to" bson:"to"`
	// Amount is the economically relevant amount of the event: listed or
	// new price, net proceeds on a sale, refunded amount on a refund.
	Amount domain.Amount  `json:"amount" bson:"amount"`
	Asset  domain.Address `json:"asset" bson:"asset"`
	Time   time.Time      `json:"time" bson:"time"`
}

type FindAllOptions struct {
	ChainId    *domain.ChainId
	Collection *domain.Address
	TokenId    *domain.TokenId
	Type       *Type
	Offset     *int32
	Limit      *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithToken(collection domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		options.TokenId = &tokenId
		return nil
	}
}

func WithType(typ Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &typ
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	Insert(ctx ctx.Ctx, activity *Activity) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Activity, error)
}
