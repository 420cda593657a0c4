package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var BridgeRouterABI abi.ABI

// message + value delivery router. quoteFee prices a delivery toward a
// destination chain, dispatch ships stable funds plus payload.
var bridgeRouterABI = `[{"type":"function","name":"quoteFee","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint16","name":"_dstChainId"},{"type":"bytes","name":"_payload"},{"type":"uint256","name":"_dstGas"}],"outputs":[{"type":"uint256","name":"fee"}]},{"type":"function","name":"dispatch","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint16","name":"_dstChainId"},{"type":"uint256","name":"_assetKind"},{"type":"uint256","name":"_minAmount"},{"type":"address","name":"_refundAddress"},{"type":"uint256","name":"_amount"},{"type":"uint256","name":"_minAmountOut"},{"type":"uint256","name":"_dstGas"},{"type":"bytes","name":"_destAddress"},{"type":"bytes","name":"_payload"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(bridgeRouterABI))
	if err != nil {
		panic("Failed to parse bridge router abi")
	}
	BridgeRouterABI = _abi
}
