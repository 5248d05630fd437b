package compound

import (
	"lending/core"
	"lending/pkg/number"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var one = number.NewAmount(1)

func TestCollateralRatio(t *testing.T) {
	d := core.NewDeposit("c", "alice")
	b := core.NewBorrow("alice")

	_, err := CollateralRatio(d, b, one, one)
	assert.ErrorIs(t, err, core.ErrNoCollateral)

	d.Principal = number.NewAmount(1000)
	ratio, err := CollateralRatio(d, b, one, one)
	require.Nil(t, err)
	assert.True(t, ratio.IsMax(), "no debt gives the sentinel")

	b.AmountBorrowed = number.NewAmount(600)
	b.InterestOwed = number.NewAmount(66)
	ratio, err = CollateralRatio(d, b, one, one)
	require.Nil(t, err)
	// 1000 * 10000 / 666
	assert.Equal(t, "15015", ratio.String())

	d.AccruedInterest = number.NewAmount(500)
	ratio, err = CollateralRatio(d, b, one, one)
	require.Nil(t, err)
	assert.Equal(t, "22522", ratio.String())
}

func TestRatioScaledPrice(t *testing.T) {
	scale := number.NewAmount(100000000)
	// 2.5 base units per collateral unit
	price := number.NewAmount(250000000)

	ratio, err := Ratio(number.NewAmount(1000), number.NewAmount(1000), price, scale)
	require.Nil(t, err)
	assert.Equal(t, "25000", ratio.String())

	_, err = Ratio(number.MaxAmount(), number.NewAmount(1), price, scale)
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)
}

func TestMaxTotalDebt(t *testing.T) {
	debt, err := MaxTotalDebt(number.NewAmount(1000), one, one, 15000)
	require.Nil(t, err)
	assert.Equal(t, "666", debt.String())

	ratio, err := Ratio(number.NewAmount(1000), debt, one, one)
	require.Nil(t, err)
	assert.False(t, ratio.LessThan(number.NewAmount(15000)))

	scale := number.NewAmount(100000000)
	debt, err = MaxTotalDebt(number.NewAmount(1000), number.NewAmount(300000000), scale, 15000)
	require.Nil(t, err)
	assert.Equal(t, "2000", debt.String())
}

func TestSeizeAmount(t *testing.T) {
	seize, err := SeizeAmount(number.NewAmount(100), one, one, 0)
	require.Nil(t, err)
	assert.Equal(t, "100", seize.String())

	seize, err = SeizeAmount(number.NewAmount(100), one, one, 500)
	require.Nil(t, err)
	assert.Equal(t, "105", seize.String())

	scale := number.NewAmount(100000000)
	seize, err = SeizeAmount(number.NewAmount(100), number.NewAmount(300000000), scale, 0)
	require.Nil(t, err)
	assert.Equal(t, "33", seize.String())

	_, err = SeizeAmount(number.NewAmount(100), number.Zero, one, 0)
	assert.ErrorIs(t, err, core.ErrInvalidPrice)
}

func TestCloseAmount(t *testing.T) {
	v, err := CloseAmount(number.NewAmount(1001), 5000)
	require.Nil(t, err)
	assert.Equal(t, "500", v.String())

	v, err = CloseAmount(number.NewAmount(1001), core.BasisPoints)
	require.Nil(t, err)
	assert.Equal(t, "1001", v.String())
}
