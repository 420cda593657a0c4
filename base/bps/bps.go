package bps

import (
	"math/big"
)

const (
	// Denominator is the fixed basis-point denominator shared by every
	// fee and tolerance computation.
	Denominator = 10000

	// ToleranceBps is the price tolerance applied to cross-chain swap
	// proceeds, 100 bps = 1%.
	ToleranceBps = 100
)

var denominator = big.NewInt(Denominator)

// FeeOf returns floor(amount * feeBps / 10000).
func FeeOf(amount *big.Int, feeBps int64) *big.Int {
	fee := new(big.Int).Mul(amount, big.NewInt(feeBps))
	return fee.Div(fee, denominator)
}

// NetOfFee returns amount - floor(amount * feeBps / 10000).
func NetOfFee(amount *big.Int, feeBps int64) *big.Int {
	return new(big.Int).Sub(amount, FeeOf(amount, feeBps))
}

// ToleranceFloor returns price - floor(price * ToleranceBps / 10000),
// the minimum acceptable swap output for a listing priced at `price`.
func ToleranceFloor(price *big.Int) *big.Int {
	return NetOfFee(price, ToleranceBps)
}

// WithinTolerance reports whether `output` covers the listed price within
// the fixed tolerance.
func WithinTolerance(output, price *big.Int) bool {
	return output.Cmp(ToleranceFloor(price)) >= 0
}
