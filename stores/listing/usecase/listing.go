package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/activity"
	"github.com/crossmart/goapi/domain/listing"
	"github.com/crossmart/goapi/domain/marketplace"
	"github.com/crossmart/goapi/service/chain/contract"
	"github.com/crossmart/goapi/service/query"
)

// native asset carries 18 decimals on every supported chain
const nativeDecimals = 18

func displayPrice(price domain.Amount) (string, error) {
	wei, err := price.ToBigInt()
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	return decimal.NewFromBigInt(wei, -nativeDecimals).String(), nil
}

type ListingUseCaseCfg struct {
	ListingRepo     listing.Repo
	MarketplaceRepo marketplace.Repo
	ActivityRepo    activity.Repo
	Erc721          contract.Erc721Contract
}

type impl struct {
	listingRepo     listing.Repo
	marketplaceRepo marketplace.Repo
	activityRepo    activity.Repo
	erc721          contract.Erc721Contract
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:     cfg.ListingRepo,
		marketplaceRepo: cfg.MarketplaceRepo,
		activityRepo:    cfg.ActivityRepo,
		erc721:          cfg.Erc721,
	}
}

func (im *impl) requireTokenOwner(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, caller domain.Address) error {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return domain.ErrBadParamInput
	}
	owner, err := im.erc721.OwnerOf(ctx, int32(chainId), string(collection), id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("failed to erc721.OwnerOf")
		return err
	}
	if !caller.Equals(domain.Address(owner)) {
		return domain.ErrNotTokenOwner
	}
	return nil
}

func (im *impl) List(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, price domain.Amount, crosschain bool, caller domain.Address) (*listing.Listing, error) {
	cfg, err := im.marketplaceRepo.FindOne(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceRepo.FindOne")
		return nil, err
	}
	if !cfg.IsCollectionApproved(collection) {
		return nil, domain.ErrNotApprovedNFT
	}

	if err := im.requireTokenOwner(ctx, chainId, collection, tokenId, caller); err != nil {
		return nil, err
	}

	listingId, err := im.listingRepo.NextListingId(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.NextListingId")
		return nil, err
	}

	status := listing.StatusActiveLocal
	if crosschain {
		status = listing.StatusActiveCrosschain
	}

	display, err := displayPrice(price)
	if err != nil {
		return nil, err
	}

	// last write wins, a relist of the same token overwrites unconditionally
	item := &listing.Listing{
		ListingId:         listingId,
		ChainId:           chainId,
		Lister:            caller,
		CollectionAddress: collection,
		TokenId:           tokenId,
		Price:             price,
		DisplayPrice:      display,
		Status:            status,
	}
	if err := im.listingRepo.Upsert(ctx, item); err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.Upsert")
		return nil, err
	}

	im.emit(ctx, &activity.Activity{
		ChainId:           chainId,
		ListingId:         listingId,
		CollectionAddress: item.CollectionAddress,
		TokenId:           tokenId,
		Type:              activity.TypeList,
		Account:           item.Lister,
		Amount:            price,
		Time:              time.Now(),
	})

	return item, nil
}

func (im *impl) EditPrice(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, newPrice domain.Amount, caller domain.Address) error {
	if err := im.requireTokenOwner(ctx, chainId, collection, tokenId, caller); err != nil {
		return err
	}

	id := listing.Id{CollectionAddress: collection, TokenId: tokenId}
	item, err := im.listingRepo.FindOne(ctx, id)
	if err == query.ErrNotFound {
		return domain.ErrNonexistentListing
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return err
	}
	if item.CollectionAddress.IsEmpty() {
		return domain.ErrNonexistentListing
	}
	if !item.Lister.Equals(caller) {
		return domain.ErrNotListingOwner
	}

	display, err := displayPrice(newPrice)
	if err != nil {
		return err
	}

	// price only, status unchanged
	if err := im.listingRepo.Patch(ctx, id, listing.Patchable{Price: &newPrice, DisplayPrice: &display}); err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.Patch")
		return err
	}

	im.emit(ctx, &activity.Activity{
		ChainId:           chainId,
		ListingId:         item.ListingId,
		CollectionAddress: item.CollectionAddress,
		TokenId:           tokenId,
		Type:              activity.TypePriceChanged,
		Account:           caller.ToLower(),
		Amount:            newPrice,
		Time:              time.Now(),
	})

	return nil
}

func (im *impl) Delist(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, caller domain.Address) error {
	if err := im.requireTokenOwner(ctx, chainId, collection, tokenId, caller); err != nil {
		return err
	}

	id := listing.Id{CollectionAddress: collection, TokenId: tokenId}
	item, err := im.listingRepo.FindOne(ctx, id)
	if err == query.ErrNotFound {
		// delisting is idempotent, a never-listed key is already inactive
		return nil
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return err
	}

	inactive := listing.StatusInactive
	if err := im.listingRepo.Patch(ctx, id, listing.Patchable{Status: &inactive}); err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.Patch")
		return err
	}

	im.emit(ctx, &activity.Activity{
		ChainId:           chainId,
		ListingId:         item.ListingId,
		CollectionAddress: item.CollectionAddress,
		TokenId:           tokenId,
		Type:              activity.TypeDelist,
		Account:           caller.ToLower(),
		Time:              time.Now(),
	})

	return nil
}

func (im *impl) Get(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	item, err := im.listingRepo.FindOne(ctx, id)
	if err == query.ErrNotFound {
		// never listed keys read as the zero-valued inactive record
		return &listing.Listing{Status: listing.StatusInactive}, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindOne")
		return nil, err
	}
	return item, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("failed to listingRepo.FindAll")
		return nil, err
	}
	return res, nil
}

// emit appends to the activity feed. A failed append is logged and
// swallowed, the feed is advisory and must not abort a finished mutation.
func (im *impl) emit(ctx ctx.Ctx, item *activity.Activity) {
	if err := im.activityRepo.Insert(ctx, item); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": item,
		}).Warn("failed to activityRepo.Insert")
	}
}
