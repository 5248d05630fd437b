package compound

import (
	"lending/core"
	"lending/pkg/number"
)

// MaxRatio ratio of a position without debt
var MaxRatio = number.MaxAmount()

// Ratio collateral ratio in basis points, truncating at every division
//
//	ratio = collateral * price * 10000 / debt / scale
func Ratio(collateral, debt, price, scale number.Amount) (number.Amount, error) {
	if debt.IsZero() {
		return MaxRatio, nil
	}

	v, err := collateral.Mul(price)
	if err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.MulUint64(core.BasisPoints); err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.Div(debt); err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.Div(scale); err != nil {
		return number.Zero, mathErr(err)
	}

	return v, nil
}

// CollateralRatio ratio of a collateral deposit snapshot against a borrow snapshot
func CollateralRatio(deposit *core.Deposit, borrow *core.Borrow, price, scale number.Amount) (number.Amount, error) {
	if deposit.Principal.IsZero() {
		return number.Zero, core.ErrNoCollateral
	}

	collateral, err := deposit.Total()
	if err != nil {
		return number.Zero, mathErr(err)
	}

	debt, err := borrow.Debt()
	if err != nil {
		return number.Zero, mathErr(err)
	}

	return Ratio(collateral, debt, price, scale)
}

// MaxTotalDebt largest debt the collateral supports at minRatio
//
//	debt = collateral * price * 10000 / minRatio / scale
func MaxTotalDebt(collateral, price, scale number.Amount, minRatio uint64) (number.Amount, error) {
	v, err := collateral.Mul(price)
	if err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.MulUint64(core.BasisPoints); err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.DivUint64(minRatio); err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.Div(scale); err != nil {
		return number.Zero, mathErr(err)
	}

	return v, nil
}

// SeizeAmount collateral units a liquidator receives for repaying debt
//
//	seize = repay * (10000 + incentive) * scale / 10000 / price
func SeizeAmount(repay, price, scale number.Amount, incentive uint64) (number.Amount, error) {
	if price.IsZero() {
		return number.Zero, core.ErrInvalidPrice
	}

	v, err := repay.MulUint64(core.BasisPoints + incentive)
	if err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.Mul(scale); err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.DivUint64(core.BasisPoints); err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.Div(price); err != nil {
		return number.Zero, mathErr(err)
	}

	return v, nil
}

// CloseAmount share of debt repaid in one liquidation
func CloseAmount(debt number.Amount, closeFactor uint64) (number.Amount, error) {
	v, err := debt.MulUint64(closeFactor)
	if err != nil {
		return number.Zero, mathErr(err)
	}

	if v, err = v.DivUint64(core.BasisPoints); err != nil {
		return number.Zero, mathErr(err)
	}

	return v, nil
}
