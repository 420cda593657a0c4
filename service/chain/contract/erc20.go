package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/crossmart/goapi/base/abi"
	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/service/chain"
)

// Erc20Contract is the fungible-token half of the asset gateway.
type Erc20Contract interface {
	BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner string) (*big.Int, error)
	Transfer(ctx bCtx.Ctx, chainId int32, addr string, to string, amount *big.Int) (domain.TxHash, error)
	Approve(ctx bCtx.Ctx, chainId int32, addr string, spender string, amount *big.Int) (domain.TxHash, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner string) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Transfer(ctx bCtx.Ctx, chainId int32, addr string, to string, amount *big.Int) (domain.TxHash, error) {
	method := "transfer"
	return e.chainService.Transact(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(to), amount)
}

func (e *Erc20) Approve(ctx bCtx.Ctx, chainId int32, addr string, spender string, amount *big.Int) (domain.TxHash, error) {
	method := "approve"
	return e.chainService.Transact(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(spender), amount)
}
