package bridge

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/crossmart/goapi/base/abi"
	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/service/chain"
)

// stable asset pool kind used for every purchase dispatch
const stableAssetKind = 1

// dstGas is the fixed gas-for-delivery budget attached to every purchase
// message.
const dstGas = 500000

// Service is the bridge adapter: it quotes a delivery fee and ships a
// stable amount plus payload toward a destination chain. Delivery is
// asynchronous, the receive side is invoked by the bridge's router.
type Service interface {
	QuoteFee(ctx bCtx.Ctx, chainId, destChainId domain.ChainId, payload []byte) (*big.Int, error)
	Dispatch(ctx bCtx.Ctx, chainId, destChainId domain.ChainId, destAddress string, stableAmount, minAmountOut, fee *big.Int, refundAddress domain.Address, payload []byte) (domain.TxHash, error)
	// Router returns the bridge router address on a chain. Inbound
	// deliveries are only accepted from this address.
	Router(chainId domain.ChainId) (domain.Address, bool)
}

type ServiceCfg struct {
	Routers      map[domain.ChainId]domain.Address
	ChainService chain.Client
}

type impl struct {
	routers      map[domain.ChainId]domain.Address
	chainService chain.Client
}

func New(cfg *ServiceCfg) Service {
	return &impl{
		routers:      cfg.Routers,
		chainService: cfg.ChainService,
	}
}

func (im *impl) Router(chainId domain.ChainId) (domain.Address, bool) {
	router, ok := im.routers[chainId]
	return router, ok
}

func (im *impl) QuoteFee(ctx bCtx.Ctx, chainId, destChainId domain.ChainId, payload []byte) (*big.Int, error) {
	router, ok := im.routers[chainId]
	if !ok {
		return nil, chain.ErrUnsupportedChain
	}

	method := "quoteFee"
	unpacked, err := im.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(router)), nil, baseabi.BridgeRouterABI, method, uint16(destChainId), payload, big.NewInt(dstGas))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"destChainId": destChainId,
		}).Error("bridge fee quote failed")
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (im *impl) Dispatch(ctx bCtx.Ctx, chainId, destChainId domain.ChainId, destAddress string, stableAmount, minAmountOut, fee *big.Int, refundAddress domain.Address, payload []byte) (domain.TxHash, error) {
	router, ok := im.routers[chainId]
	if !ok {
		return "", chain.ErrUnsupportedChain
	}

	method := "dispatch"
	return im.chainService.Transact(
		ctx,
		int32(chainId),
		common.HexToAddress(string(router)),
		fee,
		baseabi.BridgeRouterABI,
		method,
		uint16(destChainId),
		big.NewInt(stableAssetKind),
		stableAmount,
		common.HexToAddress(string(refundAddress)),
		stableAmount,
		minAmountOut,
		big.NewInt(dstGas),
		common.FromHex(destAddress),
		payload,
	)
}
