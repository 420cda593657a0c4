package settlement

import (
	"time"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
)

// Outcome is the terminal disposition of one bridge delivery. Once funds
// arrive on the listing chain they are always disposed of in one of these
// three ways, never left unassigned.
type Outcome string

const (
	OutcomeSold Outcome = "sold"
	// OutcomeStableRefund means the settlement attempt failed outright
	// and the bridged stable amount went back to the buyer untouched.
	OutcomeStableRefund Outcome = "stableRefund"
	// OutcomeNativeRefund means the swap succeeded but its output missed
	// the tolerance floor, the full output went to the buyer in native.
	OutcomeNativeRefund Outcome = "nativeRefund"
)

// ReceiptId keys one bridge delivery. The nonce is the bridge's delivery
// nonce, a redelivery with the same nonce is acknowledged without
// settling again.
type ReceiptId struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	SrcChainId domain.ChainId `json:"srcChainId" bson:"srcChainId"`
	Nonce      uint64         `json:"nonce" bson:"nonce"`
}

type BridgeReceipt struct {
	ChainId           domain.ChainId `json:"chainId" bson:"chainId"`
	SrcChainId        domain.ChainId `json:"srcChainId" bson:"srcChainId"`
	Nonce             uint64         `json:"nonce" bson:"nonce"`
	SrcAddress        string         `json:"srcAddress" bson:"srcAddress"`
	StableAsset       domain.Address `json:"stableAsset" bson:"stableAsset"`
	StableAmount      domain.Amount  `json:"stableAmount" bson:"stableAmount"`
	Buyer             domain.Address `json:"buyer" bson:"buyer"`
	CollectionAddress domain.Address `json:"collectionAddress" bson:"collectionAddress"`
	TokenId           domain.TokenId `json:"tokenId" bson:"tokenId"`
	ListingId         int64          `json:"listingId" bson:"listingId"`
	Outcome           Outcome        `json:"outcome" bson:"outcome"`
	// Amount is the amount actually moved by the outcome: net proceeds
	// to the lister on a sale, refunded amount otherwise.
	Amount domain.Amount `json:"amount" bson:"amount"`
	Time   time.Time     `json:"time" bson:"time"`
}

func (r *BridgeReceipt) ToId() ReceiptId {
	return ReceiptId{
		ChainId:    r.ChainId,
		SrcChainId: r.SrcChainId,
		Nonce:      r.Nonce,
	}
}

type ReceiptRepo interface {
	FindOne(ctx ctx.Ctx, id ReceiptId) (*BridgeReceipt, error)
	Insert(ctx ctx.Ctx, receipt *BridgeReceipt) error
}

// LocalPurchase is the result of a completed same-chain sale.
type LocalPurchase struct {
	ListingId int64          `json:"listingId"`
	Lister    domain.Address `json:"lister"`
	Buyer     domain.Address `json:"buyer"`
	// NetAmount is the amount paid out to the lister after fee.
	NetAmount domain.Amount `json:"netAmount"`
}

type UseCase interface {
	// BuyLocal settles a same-chain purchase. Payment must equal the
	// listed price exactly.
	BuyLocal(ctx ctx.Ctx, chainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, buyer domain.Address, payment domain.Amount) (*LocalPurchase, error)

	// BuyCrosschain runs on the buyer's chain: swaps nativePrice into the
	// bridged stable asset and dispatches the bridge message toward the
	// chain holding the listing. Fire-and-forget, no local state changes.
	BuyCrosschain(ctx ctx.Ctx, srcChainId, destChainId domain.ChainId, collection domain.Address, tokenId domain.TokenId, recipient domain.Address, nativePrice, attachedValue domain.Amount) error

	// OnBridgeReceive runs on the seller's chain when the bridge delivers
	// stable funds plus payload. It always terminates in one of the three
	// outcomes and never surfaces an abort once funds have arrived.
	OnBridgeReceive(ctx ctx.Ctx, chainId domain.ChainId, caller domain.Address, srcChainId domain.ChainId, srcAddress string, nonce uint64, stableAsset domain.Address, stableAmount domain.Amount, payload []byte) (*BridgeReceipt, error)

	GetReceipt(ctx ctx.Ctx, id ReceiptId) (*BridgeReceipt, error)
}
