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

// Erc721Contract is the collectible-token half of the asset gateway:
// ownership queries and ownership transfers.
type Erc721Contract interface {
	OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error)
	TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from, to string, tokenId *big.Int) (domain.TxHash, error)
	IsApprovedForAll(ctx bCtx.Ctx, chainId int32, addr string, owner, operator string) (bool, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error) {
	method := "ownerOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(common.Address).String(), nil
}

func (e *Erc721) IsApprovedForAll(ctx bCtx.Ctx, chainId int32, addr string, owner, operator string) (bool, error) {
	method := "isApprovedForAll"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(owner), common.HexToAddress(operator))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from, to string, tokenId *big.Int) (domain.TxHash, error) {
	method := "transferFrom"
	return e.chainService.Transact(ctx, chainId, common.HexToAddress(addr), nil, e.abi, method, common.HexToAddress(from), common.HexToAddress(to), tokenId)
}
