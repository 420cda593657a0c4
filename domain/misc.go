package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

func (i TokenId) ToHexString() (string, error) {
	id, err := i.ToBigInt()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

type TxHash string

type BlockNumber uint64

// Amount is an exact integer asset amount in the asset's smallest unit,
// serialized as a base-10 string in mongo and json.
type Amount string

func (a Amount) ToBigInt() (*big.Int, error) {
	if len(a) == 0 {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid amount %s", a)
	}
	return v, nil
}

func AmountFromBigInt(v *big.Int) Amount {
	if v == nil {
		return Amount("0")
	}
	return Amount(v.String())
}
