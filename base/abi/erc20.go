package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ERC20TokenABI abi.ABI

var erc20ABI = `[{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"_owner"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"transfer","constant":false,"payable":false,"inputs":[{"type":"address","name":"_to"},{"type":"uint256","name":"_value"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"approve","constant":false,"payable":false,"inputs":[{"type":"address","name":"_spender"},{"type":"uint256","name":"_value"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"allowance","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"_owner"},{"type":"address","name":"_spender"}],"outputs":[{"type":"uint256"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic("Failed to parse erc20 abi")
	}
	ERC20TokenABI = _abi
}
