package swap

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/crossmart/goapi/base/abi"
	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/service/chain"
)

const swapDeadline = 5 * time.Minute

// Params describes a single-hop exact-input swap.
type Params struct {
	ChainId          domain.ChainId
	TokenIn          domain.Address
	TokenOut         domain.Address
	PoolFee          int64
	Recipient        domain.Address
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

// Service is the swap venue adapter. A swap may fail on insufficient
// liquidity or slippage, that failure surfaces as an error.
type Service interface {
	SwapExactInputSingle(ctx bCtx.Ctx, params *Params) (*big.Int, error)
}

type ServiceCfg struct {
	// Routers maps chain id to the venue router deployed there.
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

type exactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

func (im *impl) SwapExactInputSingle(ctx bCtx.Ctx, params *Params) (*big.Int, error) {
	router, ok := im.routers[params.ChainId]
	if !ok {
		return nil, chain.ErrUnsupportedChain
	}

	minOut := params.AmountOutMinimum
	if minOut == nil {
		minOut = big.NewInt(0)
	}
	callParams := exactInputSingleParams{
		TokenIn:           common.HexToAddress(string(params.TokenIn)),
		TokenOut:          common.HexToAddress(string(params.TokenOut)),
		Fee:               big.NewInt(params.PoolFee),
		Recipient:         common.HexToAddress(string(params.Recipient)),
		Deadline:          big.NewInt(time.Now().Add(swapDeadline).Unix()),
		AmountIn:          params.AmountIn,
		AmountOutMinimum:  minOut,
		SqrtPriceLimitX96: big.NewInt(0),
	}

	method := "exactInputSingle"
	routerAddr := common.HexToAddress(string(router))

	// quote the output with a static call first, the venue reverts here
	// on insufficient liquidity before any funds move
	unpacked, err := im.chainService.Call(ctx, int32(params.ChainId), routerAddr, nil, baseabi.SwapRouterABI, method, callParams)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": params.ChainId,
		}).Warn("swap quote reverted")
		return nil, err
	}
	amountOut := unpacked[0].(*big.Int)

	if _, err := im.chainService.Transact(ctx, int32(params.ChainId), routerAddr, nil, baseabi.SwapRouterABI, method, callParams); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": params.ChainId,
		}).Error("swap execution failed")
		return nil, err
	}

	return amountOut, nil
}
