package bps

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
)

type bpsSuite struct {
	suite.Suite
}

func TestBpsSuite(t *testing.T) {
	suite.Run(t, new(bpsSuite))
}

func (s *bpsSuite) TestFeeOf() {
	cases := []struct {
		amount string
		feeBps int64
		want   string
	}{
		{"10000", 200, "200"},
		{"1000000000000000000", 200, "20000000000000000"},
		{"99", 200, "1"},   // floors
		{"49", 200, "0"},   // floors to zero
		{"10000", 0, "0"},  // zero fee
		{"0", 200, "0"},    // zero amount
		{"10000", 10000, "10000"},
	}
	for _, c := range cases {
		amount, _ := new(big.Int).SetString(c.amount, 10)
		s.Equal(c.want, FeeOf(amount, c.feeBps).String())
	}
}

func (s *bpsSuite) TestNetOfFee() {
	// price = 1 native unit (1e18 wei), fee = 200 bps => lister nets 0.98
	price, _ := new(big.Int).SetString("1000000000000000000", 10)
	s.Equal("980000000000000000", NetOfFee(price, 200).String())

	// fee floors, so net rounds up in the lister's favor
	s.Equal("98", NetOfFee(big.NewInt(99), 200).String())
}

func (s *bpsSuite) TestToleranceFloor() {
	price, _ := new(big.Int).SetString("1000000000000000000", 10)
	s.Equal("990000000000000000", ToleranceFloor(price).String())
	s.Equal("99", ToleranceFloor(big.NewInt(100)).String())
	// sub-denominator prices keep the full price as floor
	s.Equal("99", ToleranceFloor(big.NewInt(99)).String())
}

func (s *bpsSuite) TestWithinTolerance() {
	price, _ := new(big.Int).SetString("1000000000000000000", 10)
	floor, _ := new(big.Int).SetString("990000000000000000", 10)
	below := new(big.Int).Sub(floor, big.NewInt(1))

	s.True(WithinTolerance(price, price))
	s.True(WithinTolerance(floor, price))
	s.False(WithinTolerance(below, price))
}

func (s *bpsSuite) TestCrossChainRoundTrip() {
	// 1 native unit bridged with ~60 bps of swap slippage, then a 200 bps
	// marketplace fee: the lister nets (1 - 0.006) * 0.98 of the price.
	price, _ := new(big.Int).SetString("1000000000000000000", 10)
	output := NetOfFee(price, 60)
	s.True(WithinTolerance(output, price))

	net := NetOfFee(output, 200)
	s.Equal("974120000000000000", net.String())
}
