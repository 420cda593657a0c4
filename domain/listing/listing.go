package listing

import (
	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
)

type Status string

const (
	StatusInactive         Status = "inactive"
	StatusActiveLocal      Status = "activeLocal"
	StatusActiveCrosschain Status = "activeCrosschain"
)

// IsPurchasableLocally reports whether a local buyer can settle against
// the listing. Cross-chain listings stay purchasable locally, cross-chain
// is an additive capability.
func (s Status) IsPurchasableLocally() bool {
	return s == StatusActiveLocal || s == StatusActiveCrosschain
}

// Id identifies a listing. The key is collection + tokenId only, a relist
// of the same token overwrites the previous record unconditionally.
type Id struct {
	CollectionAddress domain.Address `json:"collectionAddress" bson:"collectionAddress"`
	TokenId           domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type Listing struct {
	// ListingId is a monotonic counter used for event correlation only,
	// it is not part of the listing identity.
	ListingId         int64          `json:"listingId" bson:"listingId"`
	ChainId           domain.ChainId `json:"chainId" bson:"chainId"`
	Lister            domain.Address `json:"lister" bson:"lister"`
	CollectionAddress domain.Address `json:"collectionAddress" bson:"collectionAddress"`
	TokenId           domain.TokenId `json:"tokenId" bson:"tokenId"`
	Price             domain.Amount  `json:"price" bson:"price"`
	// DisplayPrice is the price in whole native units, display only.
	DisplayPrice string `json:"displayPrice" bson:"displayPrice"`
	Status       Status `json:"status" bson:"status"`
}

func (l *Listing) ToId() Id {
	return Id{
		CollectionAddress: l.CollectionAddress,
		TokenId:           l.TokenId,
	}
}

func (l *Listing) LowerCase() {
	l.Lister = l.Lister.ToLower()
	l.CollectionAddress = l.CollectionAddress.ToLower()
}

type Patchable struct {
	Price        *domain.Amount `bson:"price,omitempty"`
	DisplayPrice *string        `bson:"displayPrice,omitempty"`
	Status       *Status        `bson:"status,omitempty"`
}

type FindAllOptions struct {
	ChainId    *domain.ChainId
	Collection *domain.Address
	Lister     *domain.Address
	Status     *Status
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

func WithCollection(collection domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		return nil
	}
}

func WithLister(lister domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Lister = lister.ToLowerPtr()
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
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
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	Upsert(ctx ctx.Ctx, listing *Listing) error
	Patch(ctx ctx.Ctx, id Id, patchable Patchable) error
	NextListingId(ctx ctx.Ctx, chainId domain.ChainId) (int64, error)
}

type UseCase interface {
	// List creates or overwrites the listing for (collection, tokenId).
	List(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, price domain.Amount, crosschain bool, caller domain.Address) (*Listing, error)
	EditPrice(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, newPrice domain.Amount, caller domain.Address) error
	// Delist deactivates the listing. Delisting an already inactive
	// listing succeeds silently.
	Delist(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, caller domain.Address) error
	// Get returns the zero-valued record when the key was never listed.
	Get(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
