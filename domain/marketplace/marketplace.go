package marketplace

import (
	"fmt"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
)

// Config is the per-chain marketplace configuration document. There is
// exactly one document per chain id.
type Config struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	// Owner is the only address allowed to mutate this document.
	Owner domain.Address `json:"owner" bson:"owner"`
	// FeeBps is the marketplace fee in basis points. No upper bound is
	// enforced.
	FeeBps int64 `json:"feeBps" bson:"feeBps"`
	// ApprovedCollections is the set of collections eligible for listing.
	ApprovedCollections []domain.Address `json:"approvedCollections" bson:"approvedCollections"`
	// RemoteMarketplaces maps a destination chain id to the opaque
	// destination-address encoding of the sibling deployment there. The
	// map key is the decimal chain id, mongo cannot index int keys.
	RemoteMarketplaces map[string]string `json:"remoteMarketplaces" bson:"remoteMarketplaces"`
	BridgeRouter       domain.Address    `json:"bridgeRouter" bson:"bridgeRouter"`
	SwapRouter         domain.Address    `json:"swapRouter" bson:"swapRouter"`
	StableToken        domain.Address    `json:"stableToken" bson:"stableToken"`
	WrappedNative      domain.Address    `json:"wrappedNative" bson:"wrappedNative"`
	// SwapPoolFee is the venue fee tier used for both swap directions.
	SwapPoolFee int64 `json:"swapPoolFee" bson:"swapPoolFee"`
}

func (c *Config) IsCollectionApproved(collection domain.Address) bool {
	for _, approved := range c.ApprovedCollections {
		if approved.Equals(collection) {
			return true
		}
	}
	return false
}

func (c *Config) RemoteMarketplace(destChainId domain.ChainId) (string, bool) {
	dest, ok := c.RemoteMarketplaces[fmt.Sprint(destChainId)]
	return dest, ok && len(dest) > 0
}

type Repo interface {
	FindOne(ctx ctx.Ctx, chainId domain.ChainId) (*Config, error)
	Upsert(ctx ctx.Ctx, cfg *Config) error
	SetFee(ctx ctx.Ctx, chainId domain.ChainId, feeBps int64) error
	AddApprovedCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address) error
	RemoveApprovedCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address) error
	SetRemoteMarketplace(ctx ctx.Ctx, chainId domain.ChainId, destChainId domain.ChainId, dest string) error
}

// UseCase is the owner-gated admin surface. Every mutating call verifies
// the caller against Config.Owner before touching state.
type UseCase interface {
	GetConfig(ctx ctx.Ctx, chainId domain.ChainId) (*Config, error)
	ApproveCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, caller domain.Address) error
	RevokeCollection(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, caller domain.Address) error
	SetFee(ctx ctx.Ctx, chainId domain.ChainId, feeBps int64, caller domain.Address) error
	SetRemoteMarketplace(ctx ctx.Ctx, chainId domain.ChainId, destChainId domain.ChainId, dest string, caller domain.Address) error
	// GrantRouterApproval gives the bridge and swap routers unlimited
	// spending approval for the stable token.
	GrantRouterApproval(ctx ctx.Ctx, chainId domain.ChainId, caller domain.Address) error
}
