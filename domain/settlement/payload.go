package settlement

import (
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/crossmart/goapi/domain"
)

// PurchasePayload is the fixed payload shape carried by every cross-chain
// purchase message: (collection, tokenId, recipient).
type PurchasePayload struct {
	Collection domain.Address
	TokenId    domain.TokenId
	Recipient  domain.Address
}

var payloadArgs ethabi.Arguments

func init() {
	addressTy, err := ethabi.NewType("address", "", nil)
	if err != nil {
		panic("failed to build address abi type")
	}
	uint256Ty, err := ethabi.NewType("uint256", "", nil)
	if err != nil {
		panic("failed to build uint256 abi type")
	}
	payloadArgs = ethabi.Arguments{
		{Name: "collection", Type: addressTy},
		{Name: "tokenId", Type: uint256Ty},
		{Name: "recipient", Type: addressTy},
	}
}

func (p *PurchasePayload) Encode() ([]byte, error) {
	tokenId, err := p.TokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	return payloadArgs.Pack(
		common.HexToAddress(string(p.Collection)),
		tokenId,
		common.HexToAddress(string(p.Recipient)),
	)
}

func DecodePurchasePayload(data []byte) (*PurchasePayload, error) {
	values, err := payloadArgs.Unpack(data)
	if err != nil {
		return nil, xerrors.Errorf("unpack purchase payload: %w", err)
	}
	collection, ok := values[0].(common.Address)
	if !ok {
		return nil, xerrors.New("purchase payload: bad collection")
	}
	tokenId, ok := values[1].(*big.Int)
	if !ok {
		return nil, xerrors.New("purchase payload: bad token id")
	}
	recipient, ok := values[2].(common.Address)
	if !ok {
		return nil, xerrors.New("purchase payload: bad recipient")
	}
	return &PurchasePayload{
		Collection: domain.Address(strings.ToLower(collection.Hex())),
		TokenId:    domain.TokenId(tokenId.String()),
		Recipient:  domain.Address(strings.ToLower(recipient.Hex())),
	}, nil
}
