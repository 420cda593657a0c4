package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var SwapRouterABI abi.ABI

// single-hop exact-input swap, uniswap v3 router shape
var swapRouterABI = `[{"type":"function","name":"exactInputSingle","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"tuple","name":"params","components":[{"type":"address","name":"tokenIn"},{"type":"address","name":"tokenOut"},{"type":"uint24","name":"fee"},{"type":"address","name":"recipient"},{"type":"uint256","name":"deadline"},{"type":"uint256","name":"amountIn"},{"type":"uint256","name":"amountOutMinimum"},{"type":"uint160","name":"sqrtPriceLimitX96"}]}],"outputs":[{"type":"uint256","name":"amountOut"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(swapRouterABI))
	if err != nil {
		panic("Failed to parse swap router abi")
	}
	SwapRouterABI = _abi
}
